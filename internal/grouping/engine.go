// Package grouping turns application events into recipient facing
// notifications, merging related events and honoring delivery preferences.
package grouping

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/moby/locker"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

//go:generate mockgen -source=engine.go -destination=../mocks/grouping/mock.go -package=mocks

type notificationStore interface {
	LatestGroup(ctx context.Context, recipientID int64, relatedKey string) (model.Notification, error)
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	IncrementGroup(ctx context.Context, id uuid.UUID, priority model.Priority) (model.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID int64) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error)
	MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error
	CountUnreadNotifications(ctx context.Context, recipientID int64) (int, error)
	CountUnreadMessages(ctx context.Context, recipientID int64) (int, error)
	ListUnreadNotifications(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error)
	ListUndeliveredNotifications(ctx context.Context, recipientID int64, types []model.NotificationType, limit int) ([]model.Notification, error)
	GetPreference(ctx context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error)
}

type pusher interface {
	SendToKind(userID int64, kind hub.Kind, payload []byte) int
	SendToUser(userID int64, payload []byte) int
	OnlineUsers() []int64
}

type serializer interface {
	SafeSerialize(ctx context.Context, payload any) []byte
}

// Decision is what happened to the real time push of a notification.
type Decision string

const (
	DecisionPushed   Decision = "pushed"
	DecisionOffline  Decision = "offline"  // stored, replayed when the recipient connects
	DecisionDeferred Decision = "deferred" // quiet hours, pushed once they end
	DecisionDigest   Decision = "digest"   // left for an external digest sender
	DecisionDisabled Decision = "disabled" // stored only
)

// releasePage is the page size FlushDeferred reads undelivered groups with.
const releasePage = 100

// Result of Notify.
type Result struct {
	Notification model.Notification
	Merged       bool
	Decision     Decision
}

// Engine groups notifications and pushes them to notification connections.
type Engine struct {
	store notificationStore
	hub   pusher
	guard serializer
	rules Rules
	now   func() time.Time

	groups *locker.Locker
}

// NewEngine creates an engine. A nil rules map uses DefaultRules.
func NewEngine(store notificationStore, h pusher, guard serializer, rules Rules, now func() time.Time) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	if now == nil {
		now = time.Now
	}

	return &Engine{
		store:  store,
		hub:    h,
		guard:  guard,
		rules:  rules,
		now:    now,
		groups: locker.New(),
	}
}

// Notify records one event for the recipient. It joins the newest group of the
// same related key when that group's window is still open and it has room,
// and starts a new group otherwise.
func (e *Engine) Notify(
	ctx context.Context,
	recipientID int64,
	t model.NotificationType,
	related *model.EntityRef,
	priority model.Priority,
) (Result, error) {
	if recipientID <= 0 {
		return Result{}, &model.ValidationError{Field: "recipient_id", Reason: "must be positive"}
	}
	if !t.Valid() {
		return Result{}, &model.ValidationError{Field: "notification_type", Reason: "unknown type"}
	}
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !priority.Valid() {
		return Result{}, &model.ValidationError{Field: "priority", Reason: "unknown priority"}
	}

	rule := e.rules.For(t)
	related = cloneRef(related)
	rk := relatedKey(t, related, rule.GroupBy)

	n, merged, err := e.upsertGroup(ctx, recipientID, t, related, priority, rule, rk)
	if err != nil {
		return Result{}, fmt.Errorf("notify: %w", err)
	}

	result := "created"
	if merged {
		result = "merged"
	}
	metrics.NotificationsGrouped.WithLabelValues(string(t), result).Inc()

	decision, err := e.deliver(ctx, n)
	if err != nil {
		return Result{}, fmt.Errorf("notify: %w", err)
	}

	e.PushBadge(ctx, recipientID)

	return Result{Notification: n, Merged: merged, Decision: decision}, nil
}

func (e *Engine) upsertGroup(
	ctx context.Context,
	recipientID int64,
	t model.NotificationType,
	related *model.EntityRef,
	priority model.Priority,
	rule Rule,
	rk string,
) (model.Notification, bool, error) {
	key := strconv.FormatInt(recipientID, 10) + "|" + rk
	e.groups.Lock(key)
	defer e.groups.Unlock(key)

	now := e.now()

	latest, err := e.store.LatestGroup(ctx, recipientID, rk)
	switch {
	case err == nil:
		if now.Before(latest.WindowEndsAt) && latest.GroupCount < rule.MaxSize {
			n, err := e.store.IncrementGroup(ctx, latest.ID, priority)
			return n, true, err
		}
	case !errors.Is(err, model.ErrNotificationNotFound):
		return model.Notification{}, false, err
	}

	n, err := e.store.CreateNotification(ctx, model.Notification{
		ID:           uuid.New(),
		RecipientID:  recipientID,
		Type:         t,
		Priority:     priority,
		GroupKey:     groupKey(rk, now),
		RelatedKey:   rk,
		GroupCount:   1,
		Related:      related,
		WindowEndsAt: now.Add(rule.Window),
	})

	return n, false, err
}

func cloneRef(r *model.EntityRef) *model.EntityRef {
	if r == nil || r.IsZero() {
		return nil
	}
	c := *r
	return &c
}

// deliver applies the recipient's preference and pushes the group when it
// may be shown now.
func (e *Engine) deliver(ctx context.Context, n model.Notification) (Decision, error) {
	pref, err := e.store.GetPreference(ctx, n.RecipientID, n.Type)
	if err != nil {
		return "", err
	}

	decision := e.decide(pref, n)
	if decision == DecisionPushed {
		decision = e.push(ctx, n)
	}

	metrics.NotificationPushes.WithLabelValues(string(decision)).Inc()

	return decision, nil
}

func (e *Engine) decide(pref model.NotificationPreference, n model.Notification) Decision {
	switch pref.Method {
	case model.DeliveryDisabled:
		return DecisionDisabled
	case model.DeliveryDigest:
		return DecisionDigest
	}

	if n.Priority != model.PriorityUrgent && pref.InQuietHours(e.now()) {
		return DecisionDeferred
	}

	return DecisionPushed
}

func (e *Engine) push(ctx context.Context, n model.Notification) Decision {
	payload := e.guard.SafeSerialize(ctx, wire.Notification(n))
	if e.hub.SendToKind(n.RecipientID, hub.KindNotifications, payload) == 0 {
		return DecisionOffline
	}

	if err := e.store.MarkNotificationDelivered(ctx, n.ID); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", n.ID.String()).Msg("failed to mark notification delivered")
	}

	return DecisionPushed
}

// MarkRead marks one notification of the recipient read. It is idempotent.
func (e *Engine) MarkRead(ctx context.Context, recipientID int64, id uuid.UUID) (bool, error) {
	changed, err := e.store.MarkNotificationRead(ctx, id, recipientID)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}

	e.PushBadge(ctx, recipientID)

	return changed, nil
}

// MarkAllRead marks every unread notification of the recipient read,
// restricted to types when given.
func (e *Engine) MarkAllRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error) {
	n, err := e.store.MarkAllNotificationsRead(ctx, recipientID, types)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	e.PushBadge(ctx, recipientID)

	return n, nil
}

// Badge counts unread notification groups and unread direct messages.
func (e *Engine) Badge(ctx context.Context, recipientID int64) (wire.Badge, error) {
	notifications, err := e.store.CountUnreadNotifications(ctx, recipientID)
	if err != nil {
		return wire.Badge{}, fmt.Errorf("badge: %w", err)
	}

	messages, err := e.store.CountUnreadMessages(ctx, recipientID)
	if err != nil {
		return wire.Badge{}, fmt.Errorf("badge: %w", err)
	}

	return wire.Badge{Notifications: notifications, Messages: messages}, nil
}

// PushBadge recomputes the badge and sends it to every connection of the
// recipient. Failures are logged.
func (e *Engine) PushBadge(ctx context.Context, recipientID int64) {
	b, err := e.Badge(ctx, recipientID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("recipient_id", recipientID).Msg("failed to compute badge")
		return
	}

	e.hub.SendToUser(recipientID, e.guard.SafeSerialize(ctx, wire.BadgeUpdate(b)))
}

// Unread returns unread groups of the recipient, oldest first.
func (e *Engine) Unread(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error) {
	list, err := e.store.ListUnreadNotifications(ctx, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("unread: %w", err)
	}
	return list, nil
}

// MarkDelivered records that n reached a connection of its recipient.
func (e *Engine) MarkDelivered(ctx context.Context, n model.Notification) {
	if n.IsDelivered {
		return
	}
	if err := e.store.MarkNotificationDelivered(ctx, n.ID); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", n.ID.String()).Msg("failed to mark notification delivered")
	}
}

// FlushDeferred pushes undelivered groups of online recipients whose
// preference now allows real time delivery. It returns the number pushed.
func (e *Engine) FlushDeferred(ctx context.Context) (int, error) {
	pushed := 0

	for _, recipientID := range e.hub.OnlineUsers() {
		if err := ctx.Err(); err != nil {
			return pushed, err
		}

		open, err := e.openTypes(ctx, recipientID)
		if err != nil {
			return pushed, fmt.Errorf("flush deferred: %w", err)
		}
		if len(open) == 0 {
			continue
		}

		sent, err := e.release(ctx, recipientID, open)
		if err != nil {
			return pushed, fmt.Errorf("flush deferred: %w", err)
		}

		if sent > 0 {
			pushed += sent
			metrics.NotificationPushes.WithLabelValues("released").Add(float64(sent))
			e.PushBadge(ctx, recipientID)
		}
	}

	return pushed, nil
}

// openTypes lists the types the recipient accepts in real time right now.
func (e *Engine) openTypes(ctx context.Context, recipientID int64) ([]model.NotificationType, error) {
	var open []model.NotificationType

	for _, t := range model.NotificationTypes {
		pref, err := e.store.GetPreference(ctx, recipientID, t)
		if err != nil {
			return nil, err
		}
		if e.decide(pref, model.Notification{Type: t, Priority: model.PriorityNormal}) == DecisionPushed {
			open = append(open, t)
		}
	}

	return open, nil
}

// release pushes undelivered groups of the given types page by page until a
// page comes back short, a push fails or a group shows up twice.
func (e *Engine) release(ctx context.Context, recipientID int64, types []model.NotificationType) (int, error) {
	seen := make(map[uuid.UUID]struct{})

	for {
		page, err := e.store.ListUndeliveredNotifications(ctx, recipientID, types, releasePage)
		if err != nil {
			return len(seen), err
		}

		for _, n := range page {
			if _, ok := seen[n.ID]; ok {
				return len(seen), nil
			}
			if e.push(ctx, n) != DecisionPushed {
				return len(seen), nil
			}
			seen[n.ID] = struct{}{}
		}

		if len(page) < releasePage {
			return len(seen), nil
		}
	}
}
