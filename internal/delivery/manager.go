// Package delivery implements the retry and offline queue: messages that
// cannot be pushed to their recipient are stored, retried with backoff in
// per-conversation order, and abandoned once their retry budget is spent.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/moby/locker"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

//go:generate mockgen -source=manager.go -destination=../mocks/delivery/mock.go -package=mocks

// queueStore is the part of the persistence gateway the manager uses.
type queueStore interface {
	Enqueue(ctx context.Context, item model.QueuedMessage) (model.QueuedMessage, error)
	DuePairs(ctx context.Context, now time.Time, limit int) ([]model.Pair, error)
	PendingForPair(ctx context.Context, pair model.Pair, limit int) ([]model.QueuedMessage, error)
	CountPendingForPair(ctx context.Context, pair model.Pair) (int, error)
	RecordAttempt(ctx context.Context, id uuid.UUID, retryCount int, next time.Time, lastErr string) error
	MarkProcessed(ctx context.Context, id uuid.UUID, status model.QueueStatus, retryCount int, lastErr string) error
	MarkDelivered(ctx context.Context, id int64) (model.Message, error)
}

// Transport pushes a payload to the recipient's live connection.
type Transport interface {
	Deliver(ctx context.Context, senderID, recipientID int64, payload []byte) error
}

// FlushRequester schedules FlushPair for a pair outside the caller.
type FlushRequester interface {
	RequestFlush(ctx context.Context, req FlushRequest) error
}

// FailureSink receives abandoned items.
type FailureSink interface {
	PublishFailure(ctx context.Context, event FailureEvent) error
}

type recorder interface {
	Record(ctx context.Context, e errlog.Entry)
}

// FlushRequest asks for the pending items of a pair to be attempted. Force
// ignores next attempt times.
type FlushRequest struct {
	SenderID    int64 `json:"sender_id"`
	RecipientID int64 `json:"recipient_id"`
	Force       bool  `json:"force"`
}

// Pair returns the stream the request targets.
func (r FlushRequest) Pair() model.Pair {
	return model.Pair{SenderID: r.SenderID, RecipientID: r.RecipientID}
}

// FailureEvent describes an abandoned item.
type FailureEvent struct {
	QueuedID    uuid.UUID `json:"queued_id"`
	MessageID   *int64    `json:"message_id,omitempty"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	RetryCount  int       `json:"retry_count"`
	LastError   string    `json:"last_error"`
	AbandonedAt time.Time `json:"abandoned_at"`
}

// Outcome of a direct dispatch.
type Outcome int

const (
	Delivered Outcome = iota + 1
	Queued
)

func (o Outcome) String() string {
	if o == Delivered {
		return "delivered"
	}
	return "queued"
}

// Options configures a Manager.
type Options struct {
	MaxRetries  int
	Backoff     Backoff
	SweepBatch  int
	Concurrency int // pairs flushed in parallel by one sweep
	Now         func() time.Time
}

// Manager owns the offline queue.
type Manager struct {
	store     queueStore
	transport Transport
	rec       recorder
	flusher   FlushRequester
	failures  FailureSink

	backoff     Backoff
	maxRetries  int
	batch       int
	concurrency int
	now         func() time.Time

	pairs *locker.Locker
}

// NewManager creates a manager. Flush requests are served inline until
// SetFlusher is called.
func NewManager(store queueStore, transport Transport, rec recorder, opts Options) *Manager {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 5
	}
	if opts.SweepBatch <= 0 {
		opts.SweepBatch = 100
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Manager{
		store:       store,
		transport:   transport,
		rec:         rec,
		backoff:     opts.Backoff,
		maxRetries:  opts.MaxRetries,
		batch:       opts.SweepBatch,
		concurrency: opts.Concurrency,
		now:         opts.Now,
		pairs:       locker.New(),
	}
}

// SetFlusher routes flush requests through f (a broker or a local scheduler).
func (m *Manager) SetFlusher(f FlushRequester) {
	m.flusher = f
}

// SetFailureSink publishes abandoned items to s.
func (m *Manager) SetFailureSink(s FailureSink) {
	m.failures = s
}

// Enqueue stores a payload for later delivery with retry count 0 and an
// immediate next attempt.
func (m *Manager) Enqueue(ctx context.Context, senderID, recipientID int64, messageID *int64, payload []byte) (model.QueuedMessage, error) {
	item, err := m.store.Enqueue(ctx, model.QueuedMessage{
		ID:            uuid.New(),
		MessageID:     messageID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Payload:       payload,
		MaxRetries:    m.maxRetries,
		NextAttemptAt: m.now(),
	})
	if err != nil {
		return model.QueuedMessage{}, fmt.Errorf("enqueue: %w", err)
	}

	metrics.QueueEnqueued.Inc()

	return item, nil
}

// Dispatch delivers a freshly persisted message. The message goes straight
// to the recipient only when nothing is queued for the pair; otherwise, or
// when the push fails, it is queued behind the pending items.
func (m *Manager) Dispatch(ctx context.Context, msg model.Message, payload []byte) (Outcome, error) {
	pair := model.Pair{SenderID: msg.SenderID, RecipientID: msg.RecipientID}
	msgID := msg.ID

	key := pair.Key()
	m.pairs.Lock(key)
	pending, err := m.store.CountPendingForPair(ctx, pair)
	if err != nil {
		m.pairs.Unlock(key)
		return 0, fmt.Errorf("dispatch: %w", err)
	}

	if pending == 0 {
		if err := m.transport.Deliver(ctx, msg.SenderID, msg.RecipientID, payload); err == nil {
			m.pairs.Unlock(key)
			if _, err := m.store.MarkDelivered(ctx, msg.ID); err != nil {
				return Delivered, fmt.Errorf("dispatch: %w", err)
			}
			metrics.DirectDelivered.Inc()
			return Delivered, nil
		}
	}

	_, err = m.Enqueue(ctx, msg.SenderID, msg.RecipientID, &msgID, payload)
	m.pairs.Unlock(key)
	if err != nil {
		return 0, fmt.Errorf("dispatch: %w", err)
	}

	if pending > 0 {
		m.requestFlush(ctx, FlushRequest{SenderID: pair.SenderID, RecipientID: pair.RecipientID})
	}

	return Queued, nil
}

// RequestFlush schedules a flush through the configured requester, or runs
// it inline when none is set.
func (m *Manager) RequestFlush(ctx context.Context, req FlushRequest) {
	m.requestFlush(ctx, req)
}

func (m *Manager) requestFlush(ctx context.Context, req FlushRequest) {
	if m.flusher != nil {
		err := m.flusher.RequestFlush(ctx, req)
		if err == nil {
			return
		}
		zlog.Logger.Warn().Err(err).
			Int64("sender_id", req.SenderID).
			Int64("recipient_id", req.RecipientID).
			Msg("flush request failed, flushing inline")
	}

	if _, err := m.FlushPair(ctx, req.Pair(), req.Force); err != nil {
		zlog.Logger.Error().Err(err).
			Int64("sender_id", req.SenderID).
			Int64("recipient_id", req.RecipientID).
			Msg("inline flush failed")
	}
}

// AttemptDelivery tries one item. On success it is marked processed and its
// message delivered; on failure the retry count grows and the next attempt is
// pushed out by the backoff, until the item is abandoned at its retry limit.
func (m *Manager) AttemptDelivery(ctx context.Context, item model.QueuedMessage) (bool, error) {
	deliverErr := m.transport.Deliver(ctx, item.SenderID, item.RecipientID, item.Payload)
	if deliverErr == nil {
		if err := m.store.MarkProcessed(ctx, item.ID, model.QueueStatusDelivered, item.RetryCount, ""); err != nil {
			return false, fmt.Errorf("attempt delivery: %w", err)
		}
		if item.MessageID != nil {
			if _, err := m.store.MarkDelivered(ctx, *item.MessageID); err != nil {
				zlog.Logger.Error().Err(err).Int64("message_id", *item.MessageID).Msg("failed to mark queued message delivered")
			}
		}
		metrics.QueueOutcomes.WithLabelValues("delivered").Inc()
		return true, nil
	}

	limit := item.MaxRetries
	if limit <= 0 {
		limit = m.maxRetries
	}

	retries := item.RetryCount + 1
	if retries >= limit {
		return false, m.abandon(ctx, item, limit, deliverErr)
	}

	next := m.now().Add(m.backoff.Delay(retries))
	if err := m.store.RecordAttempt(ctx, item.ID, retries, next, deliverErr.Error()); err != nil {
		return false, fmt.Errorf("attempt delivery: %w", err)
	}

	metrics.QueueOutcomes.WithLabelValues("retry").Inc()

	return false, nil
}

func (m *Manager) abandon(ctx context.Context, item model.QueuedMessage, retries int, cause error) error {
	err := m.store.MarkProcessed(ctx, item.ID, model.QueueStatusAbandoned, retries, cause.Error())
	if errors.Is(err, model.ErrAlreadyProcessed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("abandon: %w", err)
	}

	metrics.QueueOutcomes.WithLabelValues("abandoned").Inc()

	fields := map[string]any{
		"queued_id":    item.ID.String(),
		"recipient_id": item.RecipientID,
		"retry_count":  retries,
	}
	if item.MessageID != nil {
		fields["message_id"] = strconv.FormatInt(*item.MessageID, 10)
	}

	if m.rec != nil {
		m.rec.Record(ctx, errlog.Entry{
			Category: model.CategoryConnectionError,
			Severity: model.SeverityError,
			Message:  "delivery abandoned after exhausting retries",
			Err:      cause,
			UserID:   item.SenderID,
			Context:  fields,
		})
	}

	if m.failures != nil {
		event := FailureEvent{
			QueuedID:    item.ID,
			MessageID:   item.MessageID,
			SenderID:    item.SenderID,
			RecipientID: item.RecipientID,
			RetryCount:  retries,
			LastError:   cause.Error(),
			AbandonedAt: m.now().UTC(),
		}
		if err := m.failures.PublishFailure(ctx, event); err != nil {
			zlog.Logger.Warn().Err(err).Str("queued_id", item.ID.String()).Msg("failed to publish delivery failure")
		}
	}

	return nil
}

// FlushPair attempts the pending items of one pair in creation order and
// stops at the first item that is not due (unless force) or fails. Flushes
// of the same pair never overlap.
func (m *Manager) FlushPair(ctx context.Context, pair model.Pair, force bool) (int, error) {
	m.pairs.Lock(pair.Key())
	defer m.pairs.Unlock(pair.Key())

	items, err := m.store.PendingForPair(ctx, pair, m.batch)
	if err != nil {
		return 0, fmt.Errorf("flush pair: %w", err)
	}

	delivered := 0
	now := m.now()
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		if !force && !item.Due(now) {
			break
		}

		ok, err := m.AttemptDelivery(ctx, item)
		if err != nil {
			return delivered, err
		}
		if !ok {
			break
		}
		delivered++
	}

	return delivered, nil
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Pairs     int
	Delivered int
}

// Sweep flushes every pair whose oldest pending item is due. Distinct pairs
// are flushed in parallel.
func (m *Manager) Sweep(ctx context.Context) (SweepResult, error) {
	pairs, err := m.store.DuePairs(ctx, m.now(), m.batch)
	if err != nil {
		return SweepResult{}, fmt.Errorf("sweep: %w", err)
	}

	results := make([]int, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i, pair := range pairs {
		g.Go(func() error {
			n, err := m.FlushPair(gctx, pair, false)
			results[i] = n
			if err != nil {
				zlog.Logger.Error().Err(err).
					Int64("sender_id", pair.SenderID).
					Int64("recipient_id", pair.RecipientID).
					Msg("failed to flush pair")
			}
			return nil
		})
	}
	_ = g.Wait()

	res := SweepResult{Pairs: len(pairs)}
	for _, n := range results {
		res.Delivered += n
	}

	return res, ctx.Err()
}
