// Package errlog records caught failures of the delivery pipeline as
// MessagingError rows and structured log lines.
package errlog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/persistence"
)

const writeTimeout = 3 * time.Second

// errorStore persists MessagingError records.
type errorStore interface {
	RecordError(ctx context.Context, e model.MessagingError) error
}

// Recorder logs and persists MessagingErrors. Persisting is best effort:
// a failing store is only logged.
type Recorder struct {
	store errorStore
}

// NewRecorder creates a recorder writing to store. A nil store only logs.
func NewRecorder(store errorStore) *Recorder {
	return &Recorder{store: store}
}

// Entry describes one caught failure.
type Entry struct {
	Category model.ErrorCategory
	Severity model.Severity
	Message  string
	Err      error
	UserID   int64          // 0 when no user is involved
	Context  map[string]any // identifiers and payload shape only
}

// Record logs the entry and appends it to the store.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if e.Severity == "" {
		e.Severity = model.SeverityError
	}
	if errors.Is(e.Err, persistence.ErrGatewayClosed) {
		e.Category = model.CategoryContextViolation
	}

	event := zlog.Logger.WithLevel(level(e.Severity)).
		Str("category", string(e.Category)).
		Str("severity", string(e.Severity))
	if e.Err != nil {
		event = event.Err(e.Err)
	}
	if e.UserID != 0 {
		event = event.Int64("user_id", e.UserID)
	}
	if len(e.Context) > 0 {
		event = event.Fields(e.Context)
	}
	event.Msg(e.Message)

	metrics.Errors.WithLabelValues(string(e.Category), string(e.Severity)).Inc()

	if r == nil || r.store == nil {
		return
	}

	record := model.MessagingError{
		Category: e.Category,
		Message:  e.Message,
		Context:  e.Context,
		Severity: e.Severity,
	}
	if e.Err != nil {
		record.Message = e.Message + ": " + e.Err.Error()
	}
	if e.UserID != 0 {
		uid := e.UserID
		record.UserID = &uid
	}

	// the caller's context may already be cancelled when a connection closes
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := r.store.RecordError(wctx, record); err != nil {
		zlog.Logger.Warn().Err(err).Str("category", string(e.Category)).Msg("failed to persist messaging error")
	}
}

func level(s model.Severity) zerolog.Level {
	switch s {
	case model.SeverityDebug:
		return zerolog.DebugLevel
	case model.SeverityInfo:
		return zerolog.InfoLevel
	case model.SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
