package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and the persistence gateway.
var (
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPreferenceNotFound   = errors.New("preference not found")
	ErrPresenceNotFound     = errors.New("presence not found")
	ErrQueuedNotFound       = errors.New("queued message not found")
	ErrAlreadyProcessed     = errors.New("queued message already processed")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
