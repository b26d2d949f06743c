package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCategory is the closed taxonomy of recorded failures.
type ErrorCategory string

const (
	CategoryContextViolation   ErrorCategory = "context-violation"
	CategorySerializationError ErrorCategory = "serialization-error"
	CategoryConnectionError    ErrorCategory = "connection-error"
	CategoryRoutingError       ErrorCategory = "routing-error"
)

// Valid reports whether c belongs to the taxonomy.
func (c ErrorCategory) Valid() bool {
	switch c {
	case CategoryContextViolation, CategorySerializationError, CategoryConnectionError, CategoryRoutingError:
		return true
	}
	return false
}

// Severity of a recorded failure.
type Severity string

const (
	SeverityDebug    Severity = "debug"
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// MessagingError is an append-only diagnostic record.
type MessagingError struct {
	ID        uuid.UUID      `json:"id"`
	Category  ErrorCategory  `json:"category"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"` // identifiers and payload shape, never content
	Severity  Severity       `json:"severity"`
	UserID    *int64         `json:"user_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
