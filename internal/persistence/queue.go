package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// Enqueue stores a new pending delivery item.
func (g *Gateway) Enqueue(ctx context.Context, item model.QueuedMessage) (model.QueuedMessage, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.Status = model.QueueStatusPending
	item.Processed = false

	return call(ctx, g, "enqueue", func(ctx context.Context) (model.QueuedMessage, error) {
		return g.repos.Queue.EnqueueItem(ctx, item)
	})
}

// DuePairs returns the streams whose oldest pending item may be attempted at now.
func (g *Gateway) DuePairs(ctx context.Context, now time.Time, limit int) ([]model.Pair, error) {
	return call(ctx, g, "due pairs", func(ctx context.Context) ([]model.Pair, error) {
		return g.repos.Queue.DuePairs(ctx, now, limit)
	})
}

// PendingForPair returns unprocessed items of a stream in creation order.
func (g *Gateway) PendingForPair(ctx context.Context, pair model.Pair, limit int) ([]model.QueuedMessage, error) {
	return call(ctx, g, "pending for pair", func(ctx context.Context) ([]model.QueuedMessage, error) {
		return g.repos.Queue.PendingForPair(ctx, pair, limit)
	})
}

// CountPendingForPair returns how many unprocessed items a stream holds.
func (g *Gateway) CountPendingForPair(ctx context.Context, pair model.Pair) (int, error) {
	return call(ctx, g, "count pending", func(ctx context.Context) (int, error) {
		return g.repos.Queue.CountPendingForPair(ctx, pair)
	})
}

// RecordAttempt stores a failed attempt and schedules the next one.
func (g *Gateway) RecordAttempt(ctx context.Context, id uuid.UUID, retryCount int, next time.Time, lastErr string) error {
	return exec(ctx, g, "record attempt", func(ctx context.Context) error {
		return g.repos.Queue.RecordAttempt(ctx, id, retryCount, next, lastErr)
	})
}

// MarkProcessed moves an item into a terminal state. It fails with
// model.ErrAlreadyProcessed when another caller got there first.
func (g *Gateway) MarkProcessed(ctx context.Context, id uuid.UUID, status model.QueueStatus, retryCount int, lastErr string) error {
	return exec(ctx, g, "mark processed", func(ctx context.Context) error {
		return g.repos.Queue.MarkProcessed(ctx, id, status, retryCount, lastErr)
	})
}

// ListFailedDeliveries returns abandoned items sent by a user, newest first.
func (g *Gateway) ListFailedDeliveries(ctx context.Context, senderID int64, limit int) ([]model.QueuedMessage, error) {
	limit = ClampPageSize(limit)

	return call(ctx, g, "list failed", func(ctx context.Context) ([]model.QueuedMessage, error) {
		return g.repos.Queue.ListFailed(ctx, senderID, limit)
	})
}
