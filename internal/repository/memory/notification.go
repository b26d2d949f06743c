package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// LatestGroup returns the newest group of a recipient for a related key.
func (s *Store) LatestGroup(_ context.Context, recipientID int64, relatedKey string) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		latest  model.Notification
		bestSeq int64
		found   bool
	)
	for id, n := range s.notifications {
		if n.RecipientID != recipientID || n.RelatedKey != relatedKey {
			continue
		}
		if seq := s.notifSeq[id]; !found || seq > bestSeq {
			latest, bestSeq, found = n, seq, true
		}
	}

	if !found {
		return model.Notification{}, model.ErrNotificationNotFound
	}

	return latest, nil
}

// CreateNotification stores a new group.
func (s *Store) CreateNotification(_ context.Context, n model.Notification) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	n.CreatedAt = now
	n.UpdatedAt = now

	s.notifications[n.ID] = n
	s.notifSeq[n.ID] = int64(len(s.notifSeq)) + 1

	return n, nil
}

// IncrementGroup folds one event into a group.
func (s *Store) IncrementGroup(_ context.Context, id uuid.UUID, priority model.Priority) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, model.ErrNotificationNotFound
	}

	n.GroupCount++
	n.Priority = n.Priority.Max(priority)
	n.IsRead = false
	n.IsDelivered = false
	n.UpdatedAt = s.clock()
	s.notifications[id] = n

	return n, nil
}

// GetNotification returns a notification by id.
func (s *Store) GetNotification(_ context.Context, id uuid.UUID) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, model.ErrNotificationNotFound
	}

	return n, nil
}

// MarkNotificationRead marks a notification of the recipient read.
func (s *Store) MarkNotificationRead(_ context.Context, id uuid.UUID, recipientID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return false, model.ErrNotificationNotFound
	}
	if n.IsRead {
		return false, nil
	}

	n.IsRead = true
	n.UpdatedAt = s.clock()
	s.notifications[id] = n

	return true, nil
}

// MarkAllNotificationsRead marks unread notifications of the recipient read.
func (s *Store) MarkAllNotificationsRead(_ context.Context, recipientID int64, types []model.NotificationType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := func(t model.NotificationType) bool {
		if len(types) == 0 {
			return true
		}
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}

	now := s.clock()
	var changed int64
	for id, n := range s.notifications {
		if n.RecipientID != recipientID || n.IsRead || !match(n.Type) {
			continue
		}
		n.IsRead = true
		n.UpdatedAt = now
		s.notifications[id] = n
		changed++
	}

	return changed, nil
}

// MarkNotificationDelivered sets the delivered flag.
func (s *Store) MarkNotificationDelivered(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return model.ErrNotificationNotFound
	}

	n.IsDelivered = true
	s.notifications[id] = n

	return nil
}

// CountUnreadNotifications counts unread groups of the recipient.
func (s *Store) CountUnreadNotifications(_ context.Context, recipientID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, notif := range s.notifications {
		if notif.RecipientID == recipientID && !notif.IsRead {
			n++
		}
	}

	return n, nil
}

// ListUnreadNotifications returns unread groups, oldest first.
func (s *Store) ListUnreadNotifications(_ context.Context, recipientID int64, limit int) ([]model.Notification, error) {
	return s.listNotifications(recipientID, limit, func(n model.Notification) bool { return !n.IsRead })
}

// ListUndeliveredNotifications returns unread groups not pushed yet, oldest
// first, restricted to types when given.
func (s *Store) ListUndeliveredNotifications(
	_ context.Context,
	recipientID int64,
	types []model.NotificationType,
	limit int,
) ([]model.Notification, error) {
	return s.listNotifications(recipientID, limit, func(n model.Notification) bool {
		return !n.IsDelivered && !n.IsRead && (len(types) == 0 || slices.Contains(types, n.Type))
	})
}

func (s *Store) listNotifications(recipientID int64, limit int, keep func(model.Notification) bool) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Notification
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && keep(n) {
			out = append(out, n)
		}
	}

	sort.Slice(out, func(i, j int) bool { return s.notifSeq[out[i].ID] < s.notifSeq[out[j].ID] })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// GetPreference returns the stored preference of a recipient for a type.
func (s *Store) GetPreference(_ context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.preferences[preferenceKey{recipient: recipientID, typ: t}]
	if !ok {
		return model.NotificationPreference{}, model.ErrPreferenceNotFound
	}

	return p, nil
}

// UpsertPreference replaces the preference of a recipient for a type.
func (s *Store) UpsertPreference(_ context.Context, p model.NotificationPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UpdatedAt = s.clock()
	s.preferences[preferenceKey{recipient: p.RecipientID, typ: p.Type}] = p

	return nil
}
