// Package presence tracks which users are online. A user is online while at
// least one of their connections is open.
package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/moby/locker"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

//go:generate mockgen -source=tracker.go -destination=../mocks/presence/mock.go -package=mocks

type presenceStore interface {
	SetPresence(ctx context.Context, userID int64, online bool) (model.PresenceRecord, error)
	GetPresence(ctx context.Context, userID int64) (model.PresenceRecord, error)
}

// Cache holds the last known presence record per user.
type Cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type broadcaster interface {
	SendToObservers(userID int64, payload []byte) int
}

type serializer interface {
	SafeSerialize(ctx context.Context, payload any) []byte
}

type recorder interface {
	Record(ctx context.Context, e errlog.Entry)
}

// Tracker keeps per-user connection counts and persists the online/offline
// transitions.
type Tracker struct {
	store    presenceStore
	cache    Cache
	hub      broadcaster
	guard    serializer
	rec      recorder
	strategy retry.Strategy

	locks  *locker.Locker
	mu     sync.Mutex
	counts map[int64]int
}

// NewTracker creates a tracker. cache may be nil.
func NewTracker(store presenceStore, cache Cache, hub broadcaster, guard serializer, rec recorder, strategy retry.Strategy) *Tracker {
	return &Tracker{
		store:    store,
		cache:    cache,
		hub:      hub,
		guard:    guard,
		rec:      rec,
		strategy: strategy,
		locks:    locker.New(),
		counts:   make(map[int64]int),
	}
}

func cacheKey(userID int64) string {
	return "presence:" + strconv.FormatInt(userID, 10)
}

func (t *Tracker) count(userID int64, delta int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.counts[userID] + delta
	if n <= 0 {
		delete(t.counts, userID)
		n = 0
	} else {
		t.counts[userID] = n
	}

	metrics.OnlineUsers.Set(float64(len(t.counts)))

	return n
}

// Connections returns the number of open connections of a user.
func (t *Tracker) Connections(userID int64) int {
	return t.count(userID, 0)
}

// MarkOnline registers an opened connection. Only the first connection of a
// user changes the stored state and notifies observers.
func (t *Tracker) MarkOnline(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	key := cacheKey(userID)
	t.locks.Lock(key)
	defer t.locks.Unlock(key)

	if t.count(userID, 1) > 1 {
		rec, err := t.status(ctx, userID)
		if err != nil {
			t.count(userID, -1)
			return model.PresenceRecord{}, fmt.Errorf("mark online: %w", err)
		}
		return rec, nil
	}

	rec, err := t.store.SetPresence(ctx, userID, true)
	if err != nil {
		t.count(userID, -1)
		return model.PresenceRecord{}, fmt.Errorf("mark online: %w", err)
	}

	t.publish(ctx, rec)

	return rec, nil
}

// MarkOffline registers a closed connection. The user goes offline, with an
// updated last seen time, when their last connection closes.
func (t *Tracker) MarkOffline(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	key := cacheKey(userID)
	t.locks.Lock(key)
	defer t.locks.Unlock(key)

	if t.Connections(userID) == 0 {
		return t.status(ctx, userID)
	}
	if t.count(userID, -1) > 0 {
		return t.status(ctx, userID)
	}

	rec, err := t.store.SetPresence(ctx, userID, false)
	if err != nil {
		if t.rec != nil {
			t.rec.Record(ctx, errlog.Entry{
				Category: model.CategoryConnectionError,
				Severity: model.SeverityWarning,
				Message:  "failed to persist offline transition",
				Err:      err,
				UserID:   userID,
			})
		}
		return model.PresenceRecord{}, fmt.Errorf("mark offline: %w", err)
	}

	t.publish(ctx, rec)

	return rec, nil
}

func (t *Tracker) publish(ctx context.Context, rec model.PresenceRecord) {
	if t.cache != nil {
		if raw, err := json.Marshal(rec); err == nil {
			if err := t.cache.SetWithRetry(ctx, t.strategy, cacheKey(rec.UserID), string(raw)); err != nil {
				zlog.Logger.Warn().Err(err).Int64("user_id", rec.UserID).Msg("failed to cache presence")
			}
		}
	}

	if t.hub != nil {
		n := t.hub.SendToObservers(rec.UserID, t.guard.SafeSerialize(ctx, wire.UserStatus(rec)))
		zlog.Logger.Debug().
			Int64("user_id", rec.UserID).
			Bool("online", rec.Online).
			Int("observers", n).
			Msg("presence changed")
	}
}

// GetStatus returns the presence of a user. Unknown users are offline with a
// zero last seen time.
func (t *Tracker) GetStatus(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	return t.status(ctx, userID)
}

func (t *Tracker) status(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	if t.cache != nil {
		raw, err := t.cache.GetWithRetry(ctx, t.strategy, cacheKey(userID))
		if err == nil {
			var rec model.PresenceRecord
			if err := json.Unmarshal([]byte(raw), &rec); err == nil {
				return rec, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("presence cache unavailable")
		}
	}

	rec, err := t.store.GetPresence(ctx, userID)
	if errors.Is(err, model.ErrPresenceNotFound) {
		return model.PresenceRecord{UserID: userID}, nil
	}
	if err != nil {
		return model.PresenceRecord{}, fmt.Errorf("get status: %w", err)
	}

	if t.cache != nil {
		if raw, err := json.Marshal(rec); err == nil {
			_ = t.cache.SetWithRetry(ctx, t.strategy, cacheKey(userID), string(raw))
		}
	}

	return rec, nil
}
