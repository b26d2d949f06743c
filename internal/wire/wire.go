// Package wire defines the payloads exchanged over the connection gateways.
package wire

import (
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/serialize"
)

// Inbound payload types.
const (
	TypeSendMessage = "send-message"
	TypeTyping      = "typing"
	TypeReadReceipt = "read-receipt"
	TypeGetStatus   = "get-status"
	TypeMarkRead    = "mark-read"
	TypeMarkAllRead = "mark-all-read"
	TypeSyncRequest = "sync-request"
)

// Outbound event types.
const (
	EventMessage      = "message"
	EventTyping       = "typing"
	EventReadReceipt  = "read-receipt"
	EventUserStatus   = "user-status"
	EventNotification = "notification"
	EventBadgeUpdate  = "badge-update"
	EventError        = "error"
)

// Error codes carried by error events.
const (
	CodeInvalidPayload  = "invalid_payload"
	CodeUnsupportedType = "unsupported_type"
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
	CodeInternal        = "internal"
)

// Delivery status reported to the sender of a message.
const (
	StatusDelivered = "delivered"
	StatusQueued    = "queued"
)

// Event is an outbound payload.
type Event map[string]any

// With sets key and returns the event.
func (e Event) With(key string, v any) Event {
	e[key] = v
	return e
}

// Type returns the event type.
func (e Event) Type() string {
	t, _ := e["type"].(string)
	return t
}

func record(eventType string, v any) Event {
	e := Event{}
	if fields, ok := serialize.Serialize(v).(map[string]any); ok {
		for k, val := range fields {
			e[k] = val
		}
	}
	e["type"] = eventType
	return e
}

// Message carries a persisted chat message.
func Message(m model.Message) Event {
	return record(EventMessage, m)
}

// Notification carries a notification group.
func Notification(n model.Notification) Event {
	return record(EventNotification, n)
}

// Typing tells a peer that a user started or stopped typing.
func Typing(userID int64, isTyping bool) Event {
	return Event{"type": EventTyping, "user_id": userID, "is_typing": isTyping}
}

// ReadReceipt tells the sender of m that the recipient read it.
func ReadReceipt(m model.Message) Event {
	return Event{
		"type":       EventReadReceipt,
		"message_id": m.ID,
		"reader_id":  m.RecipientID,
		"read_at":    serialize.Serialize(m.ReadAt),
	}
}

// UserStatus reports the presence of a user.
func UserStatus(rec model.PresenceRecord) Event {
	e := Event{"type": EventUserStatus, "user_id": rec.UserID, "online": rec.Online}
	if !rec.LastSeen.IsZero() {
		e["last_seen"] = rec.LastSeen.UTC().Format(serialize.TimeFormat)
	}
	return e
}

// Badge is the unread counter of a user.
type Badge struct {
	Notifications int
	Messages      int
}

// Total is the number rendered on the badge.
func (b Badge) Total() int {
	return b.Notifications + b.Messages
}

// BadgeUpdate carries the unread counter of a user.
func BadgeUpdate(b Badge) Event {
	return Event{
		"type":          EventBadgeUpdate,
		"unread":        b.Total(),
		"notifications": b.Notifications,
		"messages":      b.Messages,
	}
}

// Error builds an error event. field may be empty.
func Error(category model.ErrorCategory, code, message, field string) Event {
	e := Event{"type": EventError, "category": string(category), "code": code, "message": message}
	if field != "" {
		e["field"] = field
	}
	return e
}
