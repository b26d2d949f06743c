package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// EnqueueItem stores a pending item at the tail of its pair.
func (s *Store) EnqueueItem(_ context.Context, q model.QueuedMessage) (model.QueuedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	s.lastSeq++
	q.Seq = s.lastSeq
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.NextAttemptAt.IsZero() {
		q.NextAttemptAt = now
	}

	s.queue[q.ID] = q

	return q, nil
}

// pendingLocked returns unprocessed items grouped by pair in seq order.
func (s *Store) pendingLocked() map[model.Pair][]model.QueuedMessage {
	pending := make(map[model.Pair][]model.QueuedMessage)
	for _, q := range s.queue {
		if q.Processed {
			continue
		}
		pending[q.Pair()] = append(pending[q.Pair()], q)
	}

	for _, items := range pending {
		sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })
	}

	return pending
}

// DuePairs returns pairs whose oldest pending item is due, oldest head first.
func (s *Store) DuePairs(_ context.Context, now time.Time, limit int) ([]model.Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type head struct {
		pair model.Pair
		seq  int64
	}

	var heads []head
	for pair, items := range s.pendingLocked() {
		if items[0].Due(now) {
			heads = append(heads, head{pair: pair, seq: items[0].Seq})
		}
	}
	sort.Slice(heads, func(i, j int) bool { return heads[i].seq < heads[j].seq })

	out := make([]model.Pair, 0, len(heads))
	for _, h := range heads {
		out = append(out, h.pair)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

// PendingForPair returns unprocessed items of a pair in creation order.
func (s *Store) PendingForPair(_ context.Context, pair model.Pair, limit int) ([]model.QueuedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.pendingLocked()[pair]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// CountPendingForPair counts unprocessed items of a pair.
func (s *Store) CountPendingForPair(_ context.Context, pair model.Pair) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, q := range s.queue {
		if !q.Processed && q.Pair() == pair {
			n++
		}
	}

	return n, nil
}

// RecordAttempt stores a failed attempt on a pending item.
func (s *Store) RecordAttempt(_ context.Context, id uuid.UUID, retryCount int, nextAttemptAt time.Time, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queue[id]
	if !ok {
		return model.ErrQueuedNotFound
	}
	if q.Processed {
		return model.ErrAlreadyProcessed
	}

	q.RetryCount = retryCount
	q.NextAttemptAt = nextAttemptAt
	q.LastError = lastErr
	q.UpdatedAt = s.clock()
	s.queue[id] = q

	return nil
}

// MarkProcessed moves a pending item into a terminal state exactly once.
func (s *Store) MarkProcessed(_ context.Context, id uuid.UUID, status model.QueueStatus, retryCount int, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queue[id]
	if !ok {
		return model.ErrQueuedNotFound
	}
	if q.Processed {
		return model.ErrAlreadyProcessed
	}

	q.Processed = true
	q.Status = status
	q.RetryCount = retryCount
	q.LastError = lastErr
	q.UpdatedAt = s.clock()
	s.queue[id] = q

	return nil
}

// ListFailed returns abandoned items of a sender, newest first.
func (s *Store) ListFailed(_ context.Context, senderID int64, limit int) ([]model.QueuedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.QueuedMessage
	for _, q := range s.queue {
		if q.SenderID == senderID && q.Status == model.QueueStatusAbandoned {
			out = append(out, q)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
