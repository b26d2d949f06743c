// Package validate defends the delivery pipeline from malformed connection
// metadata and inbound payloads.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

// ErrUnsupportedType is returned for payload types outside the inbound set.
var ErrUnsupportedType = errors.New("unsupported message type")

// Command is a validated inbound payload.
type Command interface {
	Type() string
}

// SendMessage asks to persist and deliver a chat message.
type SendMessage struct {
	Content        string `validate:"nonblank,max=5000"`
	IdempotencyKey string `validate:"nonblank,max=255"`
}

// Typing is a transient typing indicator.
type Typing struct {
	IsTyping bool
}

// ReadReceipt marks a received message read.
type ReadReceipt struct {
	MessageID int64 `validate:"gt=0"`
}

// GetStatus asks for the presence of a user; zero means the chat peer.
type GetStatus struct {
	UserID int64 `validate:"gte=0"`
}

// MarkRead marks one notification read.
type MarkRead struct {
	NotificationID uuid.UUID
}

// MarkAllRead marks every notification read, optionally only some types.
type MarkAllRead struct {
	Types []model.NotificationType `validate:"dive,notification_type"`
}

// SyncRequest asks for a page of history.
type SyncRequest struct {
	BeforeID int64 `validate:"gte=0"`
	Limit    int   `validate:"gte=0,lte=100"`
}

func (SendMessage) Type() string { return wire.TypeSendMessage }
func (Typing) Type() string      { return wire.TypeTyping }
func (ReadReceipt) Type() string { return wire.TypeReadReceipt }
func (GetStatus) Type() string   { return wire.TypeGetStatus }
func (MarkRead) Type() string    { return wire.TypeMarkRead }
func (MarkAllRead) Type() string { return wire.TypeMarkAllRead }
func (SyncRequest) Type() string { return wire.TypeSyncRequest }

// wireNames maps struct fields to the names clients send.
var wireNames = map[string]string{
	"Content":        "content",
	"IdempotencyKey": "idempotency-key",
	"MessageID":      "message-id",
	"UserID":         "user-id",
	"NotificationID": "notification-id",
	"Types":          "notification-type",
	"BeforeID":       "before-id",
	"Limit":          "limit",
	"IsTyping":       "is-typing",
}

// Validator checks inbound payloads.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator on top of v, registering the payload rules.
func New(v *validator.Validate) *Validator {
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("notification_type", func(fl validator.FieldLevel) bool {
		return model.NotificationType(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// Decode parses a raw frame. Anything but a JSON object is rejected.
func Decode(raw []byte) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, &model.ValidationError{Reason: "payload must be a JSON object"}
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &model.ValidationError{Reason: "payload is not valid JSON"}
	}

	return payload, nil
}

// Parse validates payload against the type it declares.
func (val *Validator) Parse(payload any) (Command, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, &model.ValidationError{Reason: fmt.Sprintf("payload must be a mapping, got %T", payload)}
	}

	t, ok := m["type"].(string)
	if !ok || t == "" {
		return nil, &model.ValidationError{Field: "type", Reason: "is required"}
	}

	return val.ValidateMessageData(m, t)
}

// ValidateMessageData confirms payload is a mapping of the expected type,
// checks the primitive types of its fields and returns the normalized command.
func (val *Validator) ValidateMessageData(payload any, expectedType string) (Command, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, &model.ValidationError{Reason: fmt.Sprintf("payload must be a mapping, got %T", payload)}
	}

	if declared := SafeGet(m, "type", expectedType); declared != expectedType {
		return nil, &model.ValidationError{Field: "type", Reason: fmt.Sprintf("expected %q", expectedType)}
	}

	var (
		cmd Command
		err error
	)

	switch expectedType {
	case wire.TypeSendMessage:
		var c SendMessage
		if c.Content, err = requireString(m, "content"); err == nil {
			c.IdempotencyKey, err = requireString(m, "idempotency-key")
		}
		cmd = c
	case wire.TypeTyping:
		var c Typing
		c.IsTyping, err = optionalBool(m, "is-typing", true)
		cmd = c
	case wire.TypeReadReceipt:
		var c ReadReceipt
		c.MessageID, err = requireInt(m, "message-id")
		cmd = c
	case wire.TypeGetStatus:
		var c GetStatus
		c.UserID, err = optionalInt(m, "user-id")
		cmd = c
	case wire.TypeMarkRead:
		var c MarkRead
		var raw string
		if raw, err = requireString(m, "notification-id"); err == nil {
			if c.NotificationID, err = uuid.Parse(raw); err != nil {
				err = &model.ValidationError{Field: "notification-id", Reason: "must be a UUID"}
			}
		}
		cmd = c
	case wire.TypeMarkAllRead:
		var c MarkAllRead
		c.Types, err = optionalTypes(m, "notification-type")
		cmd = c
	case wire.TypeSyncRequest:
		var c SyncRequest
		if c.BeforeID, err = optionalInt(m, "before-id"); err == nil {
			var limit int64
			limit, err = optionalInt(m, "limit")
			c.Limit = int(limit)
		}
		cmd = c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, expectedType)
	}

	if err != nil {
		return nil, err
	}

	if err := val.v.Struct(cmd); err != nil {
		return nil, translate(err)
	}

	return cmd, nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &model.ValidationError{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	field, _, _ := strings.Cut(fe.StructField(), "[")
	name := wireNames[field]
	if name == "" {
		name = field
	}

	var reason string
	switch fe.Tag() {
	case "nonblank":
		reason = "is required"
	case "max":
		reason = "exceeds " + fe.Param() + " characters"
	case "gt", "gte":
		reason = "must be positive"
	case "lte":
		reason = "must be at most " + fe.Param()
	case "notification_type":
		reason = "unknown notification type"
	default:
		reason = "is invalid"
	}

	return &model.ValidationError{Field: name, Reason: reason}
}

func requireString(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", &model.ValidationError{Field: key, Reason: "is required"}
	}

	s, ok := raw.(string)
	if !ok {
		return "", &model.ValidationError{Field: key, Reason: fmt.Sprintf("must be a string, got %s", kind(raw))}
	}

	return s, nil
}

func optionalBool(m map[string]any, key string, def bool) (bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return def, nil
	}

	b, ok := raw.(bool)
	if !ok {
		return false, &model.ValidationError{Field: key, Reason: fmt.Sprintf("must be a boolean, got %s", kind(raw))}
	}

	return b, nil
}

func requireInt(m map[string]any, key string) (int64, error) {
	if raw, ok := m[key]; !ok || raw == nil {
		return 0, &model.ValidationError{Field: key, Reason: "is required"}
	}
	return optionalInt(m, key)
}

// optionalInt accepts integral JSON numbers and decimal strings.
func optionalInt(m map[string]any, key string) (int64, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, &model.ValidationError{Field: key, Reason: "must be an integer"}
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &model.ValidationError{Field: key, Reason: "must be an integer"}
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, &model.ValidationError{Field: key, Reason: "must be an integer"}
		}
		return n, nil
	default:
		return 0, &model.ValidationError{Field: key, Reason: fmt.Sprintf("must be an integer, got %s", kind(raw))}
	}
}

// optionalTypes accepts a single type name or a list of them.
func optionalTypes(m map[string]any, key string) ([]model.NotificationType, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case string:
		return []model.NotificationType{model.NotificationType(v)}, nil
	case []any:
		out := make([]model.NotificationType, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &model.ValidationError{Field: key, Reason: "must contain strings"}
			}
			out = append(out, model.NotificationType(s))
		}
		return out, nil
	default:
		return nil, &model.ValidationError{Field: key, Reason: fmt.Sprintf("must be a string or list, got %s", kind(raw))}
	}
}

func kind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
