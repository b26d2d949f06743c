package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// QueueStatus is the lifecycle state of a QueuedMessage.
type QueueStatus string

const (
	QueueStatusPending   QueueStatus = "pending"   // waiting for the next attempt
	QueueStatusDelivered QueueStatus = "delivered" // processed successfully
	QueueStatusAbandoned QueueStatus = "abandoned" // processed with failure after max retries
)

// QueuedMessage is a durable work item for a message that could not be
// delivered directly.
type QueuedMessage struct {
	ID            uuid.UUID   `json:"id"`
	Seq           int64       `json:"-"`                    // creation order within the store
	MessageID     *int64      `json:"message_id,omitempty"` // originating message, nil for standalone payloads
	SenderID      int64       `json:"sender_id"`
	RecipientID   int64       `json:"recipient_id"`
	Payload       []byte      `json:"-"` // serialized outbound event
	RetryCount    int         `json:"retry_count"`
	MaxRetries    int         `json:"max_retries"`
	Processed     bool        `json:"processed"`
	Status        QueueStatus `json:"status"`
	LastError     string      `json:"last_error,omitempty"`
	NextAttemptAt time.Time   `json:"next_attempt_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Pair identifies the ordered (sender, recipient) stream an item belongs to.
type Pair struct {
	SenderID    int64
	RecipientID int64
}

// Key renders the pair as a lock and map key.
func (p Pair) Key() string {
	return strconv.FormatInt(p.SenderID, 10) + ">" + strconv.FormatInt(p.RecipientID, 10)
}

// Pair returns the (sender, recipient) stream of the item.
func (q QueuedMessage) Pair() Pair {
	return Pair{SenderID: q.SenderID, RecipientID: q.RecipientID}
}

// Due reports whether the item may be attempted at now.
func (q QueuedMessage) Due(now time.Time) bool {
	return !q.Processed && !q.NextAttemptAt.After(now)
}
