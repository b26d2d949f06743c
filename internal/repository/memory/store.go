// Package memory keeps every repository in process memory. It backs the
// "memory" storage driver and the component tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/persistence"
)

type idempotencyKey struct {
	sender    int64
	recipient int64
	key       string
}

type preferenceKey struct {
	recipient int64
	typ       model.NotificationType
}

// Store implements every persistence repository.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	messages    map[int64]model.Message
	idempotency map[idempotencyKey]int64
	lastID      int64

	queue   map[uuid.UUID]model.QueuedMessage
	lastSeq int64

	notifications map[uuid.UUID]model.Notification
	notifSeq      map[uuid.UUID]int64
	preferences   map[preferenceKey]model.NotificationPreference

	presence map[int64]model.PresenceRecord
	errors   []model.MessagingError
}

// New returns an empty store using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store reading time from now.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		now:           now,
		messages:      make(map[int64]model.Message),
		idempotency:   make(map[idempotencyKey]int64),
		queue:         make(map[uuid.UUID]model.QueuedMessage),
		notifications: make(map[uuid.UUID]model.Notification),
		notifSeq:      make(map[uuid.UUID]int64),
		preferences:   make(map[preferenceKey]model.NotificationPreference),
		presence:      make(map[int64]model.PresenceRecord),
	}
}

// Repositories exposes the store through every repository interface.
func (s *Store) Repositories() persistence.Repositories {
	return persistence.Repositories{
		Messages:      s,
		Queue:         s,
		Notifications: s,
		Presence:      s,
		Errors:        s,
	}
}

func (s *Store) clock() time.Time {
	return s.now().UTC()
}

// CreateMessage stores m unless its idempotency key is already used for the pair.
func (s *Store) CreateMessage(_ context.Context, m model.Message) (model.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := idempotencyKey{sender: m.SenderID, recipient: m.RecipientID, key: m.IdempotencyKey}
	if id, ok := s.idempotency[k]; ok {
		return s.messages[id], false, nil
	}

	now := s.clock()
	s.lastID++
	m.ID = s.lastID
	m.CreatedAt = now
	m.UpdatedAt = now
	m.DeliveredAt = nil
	m.ReadAt = nil

	s.messages[m.ID] = m
	s.idempotency[k] = m.ID

	return m, true, nil
}

// GetMessage returns a message by id.
func (s *Store) GetMessage(_ context.Context, id int64) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return model.Message{}, model.ErrMessageNotFound
	}

	return m, nil
}

// MarkMessageDelivered sets the delivered timestamp once.
func (s *Store) MarkMessageDelivered(_ context.Context, id int64) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return model.Message{}, model.ErrMessageNotFound
	}

	if m.DeliveredAt == nil {
		now := s.clock()
		m.DeliveredAt = &now
		m.UpdatedAt = now
		s.messages[id] = m
	}

	return m, nil
}

// MarkMessageRead sets the read timestamp once, delivering the message first
// when needed.
func (s *Store) MarkMessageRead(_ context.Context, id int64) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return model.Message{}, model.ErrMessageNotFound
	}

	if m.ReadAt == nil {
		now := s.clock()
		if m.DeliveredAt == nil {
			m.DeliveredAt = &now
		}
		m.ReadAt = &now
		m.UpdatedAt = now
		s.messages[id] = m
	}

	return m, nil
}

// ListConversation returns messages between two users, newest first.
func (s *Store) ListConversation(_ context.Context, userA, userB, beforeID int64, limit int) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Message
	for _, m := range s.messages {
		inPair := (m.SenderID == userA && m.RecipientID == userB) ||
			(m.SenderID == userB && m.RecipientID == userA)
		if !inPair || (beforeID > 0 && m.ID >= beforeID) {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// CountUnreadMessages counts unread messages addressed to the user.
func (s *Store) CountUnreadMessages(_ context.Context, recipientID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, m := range s.messages {
		if m.RecipientID == recipientID && m.ReadAt == nil {
			n++
		}
	}

	return n, nil
}

// UpsertPresence stores the online flag, moving last-seen forward when the
// user goes offline.
func (s *Store) UpsertPresence(_ context.Context, userID int64, online bool) (model.PresenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	rec, ok := s.presence[userID]
	if !ok {
		rec = model.PresenceRecord{UserID: userID, LastSeen: now}
	} else if rec.Online && !online {
		rec.LastSeen = now
	}

	rec.Online = online
	rec.UpdatedAt = now
	s.presence[userID] = rec

	return rec, nil
}

// GetPresence returns the presence of a user.
func (s *Store) GetPresence(_ context.Context, userID int64) (model.PresenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.presence[userID]
	if !ok {
		return model.PresenceRecord{}, model.ErrPresenceNotFound
	}

	return rec, nil
}

// RecordError appends a MessagingError.
func (s *Store) RecordError(_ context.Context, e model.MessagingError) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock()
	}
	s.errors = append(s.errors, e)

	return nil
}

// ListErrors returns recorded errors of a category ("" for all), newest first.
func (s *Store) ListErrors(_ context.Context, category model.ErrorCategory, limit int) ([]model.MessagingError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.MessagingError
	for i := len(s.errors) - 1; i >= 0; i-- {
		if category != "" && s.errors[i].Category != category {
			continue
		}
		out = append(out, s.errors[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}
