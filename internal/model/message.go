package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength is the upper bound of a message body, counted in runes.
const MaxContentLength = 5000

// Message represents a single chat message between two users.
type Message struct {
	ID             int64      `json:"id"`              // monotonically increasing store identifier
	SenderID       int64      `json:"sender_id"`       // author of the message
	RecipientID    int64      `json:"recipient_id"`    // addressee of the message
	Content        string     `json:"content"`         // message body, 1..MaxContentLength runes
	IdempotencyKey string     `json:"idempotency_key"` // client supplied, unique per sender+recipient
	CreatedAt      time.Time  `json:"created_at"`      // persisted at
	DeliveredAt    *time.Time `json:"delivered_at"`    // recipient connection received it
	ReadAt         *time.Time `json:"read_at"`         // recipient viewed it
	UpdatedAt      time.Time  `json:"updated_at"`      // last state transition
}

// IsDelivered reports whether the message reached a recipient connection.
func (m Message) IsDelivered() bool {
	return m.DeliveredAt != nil
}

// IsRead reports whether the recipient has viewed the message.
func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// ValidateContent checks that content is non-blank and within MaxContentLength.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	}

	if utf8.RuneCountInString(content) > MaxContentLength {
		return &ValidationError{Field: "content", Reason: "exceeds 5000 characters"}
	}

	return nil
}
