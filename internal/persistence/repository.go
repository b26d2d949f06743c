package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// MessageRepository persists chat messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, m model.Message) (model.Message, bool, error)
	GetMessage(ctx context.Context, id int64) (model.Message, error)
	MarkMessageDelivered(ctx context.Context, id int64) (model.Message, error)
	MarkMessageRead(ctx context.Context, id int64) (model.Message, error)
	ListConversation(ctx context.Context, userA, userB, beforeID int64, limit int) ([]model.Message, error)
	CountUnreadMessages(ctx context.Context, recipientID int64) (int, error)
}

// QueueRepository persists queued deliveries.
type QueueRepository interface {
	EnqueueItem(ctx context.Context, q model.QueuedMessage) (model.QueuedMessage, error)
	DuePairs(ctx context.Context, now time.Time, limit int) ([]model.Pair, error)
	PendingForPair(ctx context.Context, pair model.Pair, limit int) ([]model.QueuedMessage, error)
	CountPendingForPair(ctx context.Context, pair model.Pair) (int, error)
	RecordAttempt(ctx context.Context, id uuid.UUID, retryCount int, nextAttemptAt time.Time, lastErr string) error
	MarkProcessed(ctx context.Context, id uuid.UUID, status model.QueueStatus, retryCount int, lastErr string) error
	ListFailed(ctx context.Context, senderID int64, limit int) ([]model.QueuedMessage, error)
}

// NotificationRepository persists notifications and delivery preferences.
type NotificationRepository interface {
	LatestGroup(ctx context.Context, recipientID int64, relatedKey string) (model.Notification, error)
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	IncrementGroup(ctx context.Context, id uuid.UUID, priority model.Priority) (model.Notification, error)
	GetNotification(ctx context.Context, id uuid.UUID) (model.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID int64) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error)
	MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error
	CountUnreadNotifications(ctx context.Context, recipientID int64) (int, error)
	ListUnreadNotifications(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error)
	ListUndeliveredNotifications(ctx context.Context, recipientID int64, types []model.NotificationType, limit int) ([]model.Notification, error)
	GetPreference(ctx context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error)
	UpsertPreference(ctx context.Context, p model.NotificationPreference) error
}

// PresenceRepository persists presence records.
type PresenceRepository interface {
	UpsertPresence(ctx context.Context, userID int64, online bool) (model.PresenceRecord, error)
	GetPresence(ctx context.Context, userID int64) (model.PresenceRecord, error)
}

// ErrorRepository appends MessagingError records.
type ErrorRepository interface {
	RecordError(ctx context.Context, e model.MessagingError) error
	ListErrors(ctx context.Context, category model.ErrorCategory, limit int) ([]model.MessagingError, error)
}

// Repositories bundles every store the gateway fronts.
type Repositories struct {
	Messages      MessageRepository
	Queue         QueueRepository
	Notifications NotificationRepository
	Presence      PresenceRepository
	Errors        ErrorRepository
}
