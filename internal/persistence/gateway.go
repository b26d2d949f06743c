// Package persistence implements the gateway through which every durable
// read and write of the delivery engine passes.
//
// Store calls are blocking. The gateway hands each of them to a dedicated,
// bounded pool of workers and waits for the result while honouring the
// caller's context, so connection goroutines, the sweeper and HTTP handlers
// all call it the same way and the number of concurrent store calls never
// exceeds the pool size.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/moby/locker"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

const (
	// DefaultPageSize is used when a caller asks for a non-positive page.
	DefaultPageSize = 50
	// MaxPageSize bounds every conversation page.
	MaxPageSize = 100

	maxIdempotencyKeyLength = 255
)

// ErrGatewayClosed is returned for calls made after Close.
var ErrGatewayClosed = errors.New("persistence gateway closed")

// Options sizes the worker pool.
type Options struct {
	Workers   int // concurrent store calls
	QueueSize int // calls waiting for a worker
}

// Gateway is the sole boundary to durable state.
type Gateway struct {
	repos Repositories

	jobs      chan func()
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	presenceLocks *locker.Locker
}

// New starts the worker pool over the given repositories.
func New(repos Repositories, opts Options) *Gateway {
	if opts.Workers <= 0 {
		opts.Workers = 16
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = 0
	}

	g := &Gateway{
		repos:         repos,
		jobs:          make(chan func(), opts.QueueSize),
		closing:       make(chan struct{}),
		done:          make(chan struct{}),
		presenceLocks: locker.New(),
	}

	g.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go g.worker()
	}

	return g
}

func (g *Gateway) worker() {
	defer g.wg.Done()

	for {
		select {
		case job := <-g.jobs:
			job()
		case <-g.closing:
			for {
				select {
				case job := <-g.jobs:
					job()
				default:
					return
				}
			}
		}
	}
}

// Close stops accepting calls, runs the calls already queued and waits for
// the workers to exit.
func (g *Gateway) Close() {
	g.closeOnce.Do(func() {
		close(g.closing)
		g.wg.Wait()
		close(g.done)
	})
}

type result[T any] struct {
	value T
	err   error
}

// call runs fn on the worker pool and waits for its result.
func call[T any](ctx context.Context, g *Gateway, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	select {
	case <-g.closing:
		zlog.Logger.Warn().Str("op", op).Msg("store call after gateway shutdown")
		return zero, fmt.Errorf("%s: %w", op, ErrGatewayClosed)
	default:
	}

	res := make(chan result[T], 1)
	job := func() {
		if err := ctx.Err(); err != nil {
			res <- result[T]{err: err}
			return
		}
		v, err := fn(ctx)
		res <- result[T]{value: v, err: err}
	}

	select {
	case g.jobs <- job:
	case <-ctx.Done():
		return zero, fmt.Errorf("%s: %w", op, ctx.Err())
	case <-g.closing:
		return zero, fmt.Errorf("%s: %w", op, ErrGatewayClosed)
	}

	unwrap := func(r result[T]) (T, error) {
		if r.err != nil {
			return zero, fmt.Errorf("%s: %w", op, r.err)
		}
		return r.value, nil
	}

	select {
	case r := <-res:
		return unwrap(r)
	case <-ctx.Done():
		return zero, fmt.Errorf("%s: %w", op, ctx.Err())
	case <-g.done:
		select {
		case r := <-res:
			return unwrap(r)
		default:
			return zero, fmt.Errorf("%s: %w", op, ErrGatewayClosed)
		}
	}
}

// exec is call for operations without a result value.
func exec(ctx context.Context, g *Gateway, op string, fn func(context.Context) error) error {
	_, err := call(ctx, g, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// ClampPageSize maps a requested page size into [1, MaxPageSize].
func ClampPageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}

// CreateMessage persists a message unless one with the same idempotency key
// already exists for the (sender, recipient) pair, in which case the existing
// record is returned and created is false.
func (g *Gateway) CreateMessage(
	ctx context.Context,
	senderID, recipientID int64,
	content, idempotencyKey string,
) (model.Message, bool, error) {
	if senderID <= 0 {
		return model.Message{}, false, &model.ValidationError{Field: "sender_id", Reason: "must be positive"}
	}
	if recipientID <= 0 {
		return model.Message{}, false, &model.ValidationError{Field: "recipient_id", Reason: "must be positive"}
	}
	if senderID == recipientID {
		return model.Message{}, false, &model.ValidationError{Field: "recipient_id", Reason: "must differ from sender"}
	}
	if err := model.ValidateContent(content); err != nil {
		return model.Message{}, false, err
	}

	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		return model.Message{}, false, &model.ValidationError{Field: "idempotency-key", Reason: "must not be empty"}
	}
	if len(key) > maxIdempotencyKeyLength {
		return model.Message{}, false, &model.ValidationError{Field: "idempotency-key", Reason: "is too long"}
	}

	type createResult struct {
		msg model.Message
		ok  bool
	}

	r, err := call(ctx, g, "create message", func(ctx context.Context) (createResult, error) {
		m, ok, err := g.repos.Messages.CreateMessage(ctx, model.Message{
			SenderID:       senderID,
			RecipientID:    recipientID,
			Content:        content,
			IdempotencyKey: key,
		})
		return createResult{msg: m, ok: ok}, err
	})
	if err != nil {
		return model.Message{}, false, err
	}

	return r.msg, r.ok, nil
}

// GetMessage returns a message by id.
func (g *Gateway) GetMessage(ctx context.Context, id int64) (model.Message, error) {
	return call(ctx, g, "get message", func(ctx context.Context) (model.Message, error) {
		return g.repos.Messages.GetMessage(ctx, id)
	})
}

// MarkDelivered sets the delivered timestamp; already delivered messages are
// returned unchanged.
func (g *Gateway) MarkDelivered(ctx context.Context, id int64) (model.Message, error) {
	return call(ctx, g, "mark delivered", func(ctx context.Context) (model.Message, error) {
		return g.repos.Messages.MarkMessageDelivered(ctx, id)
	})
}

// MarkRead sets the read timestamp (and the delivered timestamp when it is
// still missing); already read messages are returned unchanged.
func (g *Gateway) MarkRead(ctx context.Context, id int64) (model.Message, error) {
	return call(ctx, g, "mark read", func(ctx context.Context) (model.Message, error) {
		return g.repos.Messages.MarkMessageRead(ctx, id)
	})
}

// GetConversationMessages returns up to limit messages exchanged between the
// two users with an id below beforeID (0 for the latest), newest first.
func (g *Gateway) GetConversationMessages(ctx context.Context, userA, userB, beforeID int64, limit int) ([]model.Message, error) {
	limit = ClampPageSize(limit)

	return call(ctx, g, "list conversation", func(ctx context.Context) ([]model.Message, error) {
		return g.repos.Messages.ListConversation(ctx, userA, userB, beforeID, limit)
	})
}

// CountUnreadMessages returns how many messages addressed to the user are unread.
func (g *Gateway) CountUnreadMessages(ctx context.Context, recipientID int64) (int, error) {
	return call(ctx, g, "count unread messages", func(ctx context.Context) (int, error) {
		return g.repos.Messages.CountUnreadMessages(ctx, recipientID)
	})
}

// SetPresence upserts the presence record of a user. Calls for the same user
// are serialized.
func (g *Gateway) SetPresence(ctx context.Context, userID int64, online bool) (model.PresenceRecord, error) {
	key := strconv.FormatInt(userID, 10)
	g.presenceLocks.Lock(key)
	defer g.presenceLocks.Unlock(key)

	return call(ctx, g, "set presence", func(ctx context.Context) (model.PresenceRecord, error) {
		return g.repos.Presence.UpsertPresence(ctx, userID, online)
	})
}

// GetPresence returns the stored presence of a user.
func (g *Gateway) GetPresence(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	return call(ctx, g, "get presence", func(ctx context.Context) (model.PresenceRecord, error) {
		return g.repos.Presence.GetPresence(ctx, userID)
	})
}

// RecordError appends a MessagingError.
func (g *Gateway) RecordError(ctx context.Context, e model.MessagingError) error {
	return exec(ctx, g, "record error", func(ctx context.Context) error {
		return g.repos.Errors.RecordError(ctx, e)
	})
}

// ListErrors returns the latest recorded errors of a category ("" for all).
func (g *Gateway) ListErrors(ctx context.Context, category model.ErrorCategory, limit int) ([]model.MessagingError, error) {
	limit = ClampPageSize(limit)

	return call(ctx, g, "list errors", func(ctx context.Context) ([]model.MessagingError, error) {
		return g.repos.Errors.ListErrors(ctx, category, limit)
	})
}
