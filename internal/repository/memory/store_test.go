package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestStore_CreateMessageIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, created, err := s.CreateMessage(ctx, model.Message{SenderID: 1, RecipientID: 2, Content: "hi", IdempotencyKey: "k1"})
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := s.CreateMessage(ctx, model.Message{SenderID: 1, RecipientID: 2, Content: "hi", IdempotencyKey: "k1"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	// same key in the other direction is another conversation stream
	other, created, err := s.CreateMessage(ctx, model.Message{SenderID: 2, RecipientID: 1, Content: "yo", IdempotencyKey: "k1"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestStore_MarkReadSetsDelivered(t *testing.T) {
	s := New()
	ctx := context.Background()

	m, _, err := s.CreateMessage(ctx, model.Message{SenderID: 1, RecipientID: 2, Content: "hi", IdempotencyKey: "k"})
	require.NoError(t, err)

	read, err := s.MarkMessageRead(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, read.DeliveredAt)
	require.NotNil(t, read.ReadAt)
	assert.False(t, read.ReadAt.Before(*read.DeliveredAt))

	_, err = s.MarkMessageDelivered(ctx, 999)
	assert.ErrorIs(t, err, model.ErrMessageNotFound)
}

func TestStore_DuePairsHeadGating(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewWithClock(clock.now)
	ctx := context.Background()

	ab := model.Pair{SenderID: 1, RecipientID: 2}
	head, err := s.EnqueueItem(ctx, model.QueuedMessage{ID: uuid.New(), SenderID: 1, RecipientID: 2, MaxRetries: 3})
	require.NoError(t, err)
	_, err = s.EnqueueItem(ctx, model.QueuedMessage{ID: uuid.New(), SenderID: 1, RecipientID: 2, MaxRetries: 3})
	require.NoError(t, err)

	pairs, err := s.DuePairs(ctx, clock.t, 10)
	require.NoError(t, err)
	assert.Equal(t, []model.Pair{ab}, pairs)

	// a head waiting for backoff keeps the whole pair back
	require.NoError(t, s.RecordAttempt(ctx, head.ID, 1, clock.t.Add(time.Minute), "unreachable"))
	pairs, err = s.DuePairs(ctx, clock.t, 10)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	items, err := s.PendingForPair(ctx, ab, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, head.ID, items[0].ID)

	require.NoError(t, s.MarkProcessed(ctx, head.ID, model.QueueStatusAbandoned, 3, "unreachable"))
	assert.ErrorIs(t, s.MarkProcessed(ctx, head.ID, model.QueueStatusAbandoned, 3, "unreachable"), model.ErrAlreadyProcessed)

	n, err := s.CountPendingForPair(ctx, ab)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	failed, err := s.ListFailed(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, head.ID, failed[0].ID)
}

func TestStore_PresenceLastSeen(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewWithClock(clock.now)
	ctx := context.Background()

	rec, err := s.UpsertPresence(ctx, 7, true)
	require.NoError(t, err)
	assert.True(t, rec.Online)

	clock.t = clock.t.Add(time.Hour)
	rec, err = s.UpsertPresence(ctx, 7, false)
	require.NoError(t, err)
	assert.False(t, rec.Online)
	assert.Equal(t, clock.t, rec.LastSeen)

	clock.t = clock.t.Add(time.Hour)
	rec, err = s.UpsertPresence(ctx, 7, false)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(-time.Hour), rec.LastSeen)

	_, err = s.GetPresence(ctx, 8)
	assert.ErrorIs(t, err, model.ErrPresenceNotFound)
}

func TestStore_NotificationsReadState(t *testing.T) {
	s := New()
	ctx := context.Background()

	like, err := s.CreateNotification(ctx, model.Notification{ID: uuid.New(), RecipientID: 5, Type: model.NotificationPostLike, RelatedKey: "post_like:post:1", GroupCount: 1, Priority: model.PriorityLow})
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, model.Notification{ID: uuid.New(), RecipientID: 5, Type: model.NotificationMention, RelatedKey: "mention:post:1", GroupCount: 1})
	require.NoError(t, err)

	grown, err := s.IncrementGroup(ctx, like.ID, model.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, 2, grown.GroupCount)
	assert.Equal(t, model.PriorityHigh, grown.Priority)

	latest, err := s.LatestGroup(ctx, 5, "post_like:post:1")
	require.NoError(t, err)
	assert.Equal(t, like.ID, latest.ID)

	changed, err := s.MarkNotificationRead(ctx, like.ID, 5)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = s.MarkNotificationRead(ctx, like.ID, 5)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.MarkNotificationRead(ctx, like.ID, 6)
	assert.ErrorIs(t, err, model.ErrNotificationNotFound)

	n, err := s.MarkAllNotificationsRead(ctx, 5, []model.NotificationType{model.NotificationPostLike})
	require.NoError(t, err)
	assert.Zero(t, n)

	unread, err := s.CountUnreadNotifications(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}
