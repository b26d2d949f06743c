package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

const itemColumns = `id, seq, message_id, sender_id, recipient_id, payload, retry_count, max_retries,
		       processed, status, last_error, next_attempt_at, created_at, updated_at`

// Repository provides methods to interact with queued_messages table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new queue repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (model.QueuedMessage, error) {
	var (
		q         model.QueuedMessage
		messageID sql.NullInt64
	)

	err := row.Scan(
		&q.ID, &q.Seq, &messageID, &q.SenderID, &q.RecipientID, &q.Payload, &q.RetryCount, &q.MaxRetries,
		&q.Processed, &q.Status, &q.LastError, &q.NextAttemptAt, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return model.QueuedMessage{}, err
	}

	if messageID.Valid {
		q.MessageID = &messageID.Int64
	}

	return q, nil
}

// EnqueueItem inserts a pending item. A zero next attempt time means now.
func (r *Repository) EnqueueItem(ctx context.Context, q model.QueuedMessage) (model.QueuedMessage, error) {
	query := `
		INSERT INTO queued_messages (
		    id, message_id, sender_id, recipient_id, payload, max_retries, status, next_attempt_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		RETURNING ` + itemColumns + `;
    `

	var next sql.NullTime
	if !q.NextAttemptAt.IsZero() {
		next = sql.NullTime{Time: q.NextAttemptAt, Valid: true}
	}

	var messageID sql.NullInt64
	if q.MessageID != nil {
		messageID = sql.NullInt64{Int64: *q.MessageID, Valid: true}
	}

	item, err := scanItem(r.db.Master.QueryRowContext(
		ctx, query, q.ID, messageID, q.SenderID, q.RecipientID, q.Payload, q.MaxRetries, model.QueueStatusPending, next,
	))
	if err != nil {
		return model.QueuedMessage{}, fmt.Errorf("failed to enqueue item: %w", err)
	}

	return item, nil
}

// DuePairs returns pairs whose oldest pending item is due at now, ordered by
// the age of that item.
func (r *Repository) DuePairs(ctx context.Context, now time.Time, limit int) ([]model.Pair, error) {
	query := `
		SELECT sender_id, recipient_id
		FROM (
		    SELECT DISTINCT ON (sender_id, recipient_id) sender_id, recipient_id, seq, next_attempt_at
		    FROM queued_messages
		    WHERE processed = FALSE
		    ORDER BY sender_id, recipient_id, seq
		) heads
		WHERE next_attempt_at <= $1
		ORDER BY seq
		LIMIT $2;
    `

	rows, err := r.db.Master.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select due pairs: %w", err)
	}
	defer rows.Close()

	var pairs []model.Pair
	for rows.Next() {
		var p model.Pair
		if err := rows.Scan(&p.SenderID, &p.RecipientID); err != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", err)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return pairs, nil
}

// PendingForPair returns unprocessed items of a pair in creation order.
func (r *Repository) PendingForPair(ctx context.Context, pair model.Pair, limit int) ([]model.QueuedMessage, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM queued_messages
		WHERE sender_id = $1 AND recipient_id = $2 AND processed = FALSE
		ORDER BY seq
		LIMIT $3;
    `

	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	return r.list(ctx, query, pair.SenderID, pair.RecipientID, lim)
}

// CountPendingForPair counts unprocessed items of a pair.
func (r *Repository) CountPendingForPair(ctx context.Context, pair model.Pair) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM queued_messages
		WHERE sender_id = $1 AND recipient_id = $2 AND processed = FALSE;
    `

	var n int
	if err := r.db.Master.QueryRowContext(ctx, query, pair.SenderID, pair.RecipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}

	return n, nil
}

// RecordAttempt stores a failed attempt on a pending item.
func (r *Repository) RecordAttempt(ctx context.Context, id uuid.UUID, retryCount int, nextAttemptAt time.Time, lastErr string) error {
	query := `
		UPDATE queued_messages
		SET retry_count = $2, next_attempt_at = $3, last_error = $4, updated_at = NOW()
		WHERE id = $1 AND processed = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, id, retryCount, nextAttemptAt, lastErr)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return r.checkPending(ctx, res, id)
}

// MarkProcessed moves a pending item into a terminal state. Only one caller
// can succeed for a given item.
func (r *Repository) MarkProcessed(ctx context.Context, id uuid.UUID, status model.QueueStatus, retryCount int, lastErr string) error {
	query := `
		UPDATE queued_messages
		SET processed = TRUE, status = $2, retry_count = $3, last_error = $4, updated_at = NOW()
		WHERE id = $1 AND processed = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, id, status, retryCount, lastErr)
	if err != nil {
		return fmt.Errorf("failed to mark item processed: %w", err)
	}

	return r.checkPending(ctx, res, id)
}

// checkPending tells a missing item from an already processed one when an
// update touched no rows.
func (r *Repository) checkPending(ctx context.Context, res sql.Result, id uuid.UUID) error {
	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	var processed bool
	err := r.db.Master.QueryRowContext(ctx, `SELECT processed FROM queued_messages WHERE id = $1;`, id).Scan(&processed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrQueuedNotFound
		}
		return fmt.Errorf("failed to check item: %w", err)
	}

	return model.ErrAlreadyProcessed
}

// ListFailed returns abandoned items of a sender, newest first.
func (r *Repository) ListFailed(ctx context.Context, senderID int64, limit int) ([]model.QueuedMessage, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM queued_messages
		WHERE sender_id = $1 AND status = $2
		ORDER BY seq DESC
		LIMIT $3;
    `

	return r.list(ctx, query, senderID, model.QueueStatusAbandoned, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]model.QueuedMessage, error) {
	rows, err := r.db.Master.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued items: %w", err)
	}
	defer rows.Close()

	var items []model.QueuedMessage
	for rows.Next() {
		q, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queued item: %w", err)
		}
		items = append(items, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}
