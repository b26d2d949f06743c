package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

const minutesPerDay = 24 * 60

// LatestGroup returns the most recent notification group for a related key.
func (g *Gateway) LatestGroup(ctx context.Context, recipientID int64, relatedKey string) (model.Notification, error) {
	return call(ctx, g, "latest group", func(ctx context.Context) (model.Notification, error) {
		return g.repos.Notifications.LatestGroup(ctx, recipientID, relatedKey)
	})
}

// CreateNotification stores a new notification group.
func (g *Gateway) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.GroupCount <= 0 {
		n.GroupCount = 1
	}

	return call(ctx, g, "create notification", func(ctx context.Context) (model.Notification, error) {
		return g.repos.Notifications.CreateNotification(ctx, n)
	})
}

// IncrementGroup folds one more event into a group, raising its priority to
// the given one when it is higher, and marks it unread and undelivered.
func (g *Gateway) IncrementGroup(ctx context.Context, id uuid.UUID, priority model.Priority) (model.Notification, error) {
	return call(ctx, g, "increment group", func(ctx context.Context) (model.Notification, error) {
		return g.repos.Notifications.IncrementGroup(ctx, id, priority)
	})
}

// GetNotification returns a notification by id.
func (g *Gateway) GetNotification(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	return call(ctx, g, "get notification", func(ctx context.Context) (model.Notification, error) {
		return g.repos.Notifications.GetNotification(ctx, id)
	})
}

// MarkNotificationRead marks a notification of the recipient read. changed is
// false when it already was.
func (g *Gateway) MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID int64) (bool, error) {
	return call(ctx, g, "mark notification read", func(ctx context.Context) (bool, error) {
		return g.repos.Notifications.MarkNotificationRead(ctx, id, recipientID)
	})
}

// MarkAllNotificationsRead marks every unread notification of the recipient
// read, optionally restricted to the given types.
func (g *Gateway) MarkAllNotificationsRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error) {
	for _, t := range types {
		if !t.Valid() {
			return 0, &model.ValidationError{Field: "notification-type", Reason: "unknown type " + string(t)}
		}
	}

	return call(ctx, g, "mark all notifications read", func(ctx context.Context) (int64, error) {
		return g.repos.Notifications.MarkAllNotificationsRead(ctx, recipientID, types)
	})
}

// MarkNotificationDelivered records that a group reached a connection.
func (g *Gateway) MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error {
	return exec(ctx, g, "mark notification delivered", func(ctx context.Context) error {
		return g.repos.Notifications.MarkNotificationDelivered(ctx, id)
	})
}

// CountUnreadNotifications returns the number of unread groups of the recipient.
func (g *Gateway) CountUnreadNotifications(ctx context.Context, recipientID int64) (int, error) {
	return call(ctx, g, "count unread notifications", func(ctx context.Context) (int, error) {
		return g.repos.Notifications.CountUnreadNotifications(ctx, recipientID)
	})
}

// ListUnreadNotifications returns unread groups of the recipient, oldest first.
func (g *Gateway) ListUnreadNotifications(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error) {
	limit = ClampPageSize(limit)

	return call(ctx, g, "list unread notifications", func(ctx context.Context) ([]model.Notification, error) {
		return g.repos.Notifications.ListUnreadNotifications(ctx, recipientID, limit)
	})
}

// ListUndeliveredNotifications returns unread groups never pushed to the
// recipient, oldest first. A non-empty types slice restricts the page.
func (g *Gateway) ListUndeliveredNotifications(
	ctx context.Context,
	recipientID int64,
	types []model.NotificationType,
	limit int,
) ([]model.Notification, error) {
	limit = ClampPageSize(limit)

	return call(ctx, g, "list undelivered notifications", func(ctx context.Context) ([]model.Notification, error) {
		return g.repos.Notifications.ListUndeliveredNotifications(ctx, recipientID, types, limit)
	})
}

// GetPreference returns the stored preference, or the default one when the
// recipient never configured the type.
func (g *Gateway) GetPreference(ctx context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error) {
	p, err := call(ctx, g, "get preference", func(ctx context.Context) (model.NotificationPreference, error) {
		return g.repos.Notifications.GetPreference(ctx, recipientID, t)
	})
	if errors.Is(err, model.ErrPreferenceNotFound) {
		return model.DefaultPreference(recipientID, t), nil
	}

	return p, err
}

// SetPreference validates and stores a preference.
func (g *Gateway) SetPreference(ctx context.Context, p model.NotificationPreference) error {
	if !p.Type.Valid() {
		return &model.ValidationError{Field: "notification_type", Reason: "unknown type"}
	}
	if !p.Method.Valid() {
		return &model.ValidationError{Field: "delivery_method", Reason: "unknown method"}
	}
	if (p.QuietHoursStart == nil) != (p.QuietHoursEnd == nil) {
		return &model.ValidationError{Field: "quiet_hours", Reason: "start and end must be set together"}
	}
	for _, m := range []*int{p.QuietHoursStart, p.QuietHoursEnd} {
		if m != nil && (*m < 0 || *m >= minutesPerDay) {
			return &model.ValidationError{Field: "quiet_hours", Reason: "must be minutes within a day"}
		}
	}

	return exec(ctx, g, "set preference", func(ctx context.Context) error {
		return g.repos.Notifications.UpsertPreference(ctx, p)
	})
}
