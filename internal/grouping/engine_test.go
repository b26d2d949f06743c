package grouping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	mocks "github.com/Techhackontime999/LinkUp-sub000/internal/mocks/grouping"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/persistence"
	"github.com/Techhackontime999/LinkUp-sub000/internal/repository/memory"
	"github.com/Techhackontime999/LinkUp-sub000/internal/serialize"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordingConn struct {
	mu     sync.Mutex
	events []map[string]any
}

func (r *recordingConn) WriteMessage(_ int, data []byte) error {
	var e map[string]any
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingConn) SetWriteDeadline(time.Time) error { return nil }
func (r *recordingConn) Close() error                     { return nil }

func (r *recordingConn) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e["type"].(string))
	}
	return out
}

func (r *recordingConn) last() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type fixture struct {
	clock   *testClock
	gateway *persistence.Gateway
	hub     *hub.Hub
	engine  *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	c := &testClock{now: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)}
	g := persistence.New(memory.NewWithClock(c.Now).Repositories(), persistence.Options{Workers: 4})
	t.Cleanup(g.Close)

	h := hub.New(time.Second)

	return &fixture{
		clock:   c,
		gateway: g,
		hub:     h,
		engine:  NewEngine(g, h, serialize.NewGuard(nil), nil, c.Now),
	}
}

func user(id int) *model.EntityRef {
	return &model.EntityRef{Type: "user", ID: fmt.Sprint(id)}
}

func post(id int) *model.EntityRef {
	return &model.EntityRef{Type: "post", ID: fmt.Sprint(id)}
}

func TestEngine_GroupBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := f.engine.Notify(ctx, 1, model.NotificationConnectionRequest, user(100+i), model.PriorityNormal)
		require.NoError(t, err)
		f.clock.Set(f.clock.Now().Add(time.Minute))
	}

	groups, err := f.gateway.ListUnreadNotifications(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 10, groups[0].GroupCount)
	assert.Equal(t, 2, groups[1].GroupCount)
	assert.NotEqual(t, groups[0].GroupKey, groups[1].GroupKey)
}

func TestEngine_TwoEventsMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(7), model.PriorityLow)
	require.NoError(t, err)
	assert.False(t, first.Merged)

	second, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(7), model.PriorityHigh)
	require.NoError(t, err)
	assert.True(t, second.Merged)
	assert.Equal(t, first.Notification.ID, second.Notification.ID)
	assert.Equal(t, 2, second.Notification.GroupCount)
	assert.Equal(t, model.PriorityHigh, second.Notification.Priority)

	other, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(8), model.PriorityLow)
	require.NoError(t, err)
	assert.False(t, other.Merged, "likes on another post form their own group")
}

func TestEngine_WindowExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.engine.Notify(ctx, 1, model.NotificationMessage, user(2), "")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityNormal, first.Notification.Priority)

	f.clock.Set(f.clock.Now().Add(time.Hour))

	next, err := f.engine.Notify(ctx, 1, model.NotificationMessage, user(2), "")
	require.NoError(t, err)
	assert.False(t, next.Merged)
	assert.NotEqual(t, first.Notification.ID, next.Notification.ID)
}

func TestEngine_ConcurrentNotify(t *testing.T) {
	f := newFixture(t)
	f.engine.rules = Rules{model.NotificationMention: {Window: time.Hour, MaxSize: 100, GroupBy: GroupByCategory}}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.engine.Notify(ctx, 1, model.NotificationMention, user(i), model.PriorityNormal)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	groups, err := f.gateway.ListUnreadNotifications(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 40, groups[0].GroupCount)
}

func TestEngine_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.Notify(ctx, 0, model.NotificationSystem, nil, model.PriorityNormal)
	assert.True(t, model.IsValidation(err))

	_, err = f.engine.Notify(ctx, 1, "poke", nil, model.PriorityNormal)
	assert.True(t, model.IsValidation(err))

	_, err = f.engine.Notify(ctx, 1, model.NotificationSystem, nil, "whenever")
	assert.True(t, model.IsValidation(err))
}

func TestEngine_PushesToNotificationConnections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindNotifications, 0, conn)

	res, err := f.engine.Notify(ctx, 1, model.NotificationPostComment, post(1), model.PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, DecisionPushed, res.Decision)
	assert.Equal(t, []string{"notification", "badge-update"}, conn.types())
	assert.EqualValues(t, 1, conn.last()["unread"])

	stored, err := f.gateway.GetNotification(ctx, res.Notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDelivered)
}

func TestEngine_OfflineRecipient(t *testing.T) {
	f := newFixture(t)

	res, err := f.engine.Notify(context.Background(), 1, model.NotificationSystem, nil, model.PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, DecisionOffline, res.Decision)
	assert.False(t, res.Notification.IsDelivered)
}

func TestEngine_Preferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindNotifications, 0, conn)

	require.NoError(t, f.gateway.SetPreference(ctx, model.NotificationPreference{
		RecipientID: 1, Type: model.NotificationPostLike, Method: model.DeliveryDisabled,
	}))

	res, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(1), model.PriorityUrgent)
	require.NoError(t, err)
	assert.Equal(t, DecisionDisabled, res.Decision)
	assert.Equal(t, []string{"badge-update"}, conn.types(), "disabled is stored, never pushed")

	require.NoError(t, f.gateway.SetPreference(ctx, model.NotificationPreference{
		RecipientID: 1, Type: model.NotificationJobUpdate, Method: model.DeliveryDigest,
	}))
	res, err = f.engine.Notify(ctx, 1, model.NotificationJobUpdate, nil, model.PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, DecisionDigest, res.Decision)
}

func TestEngine_QuietHours(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindNotifications, 0, conn)

	start, end := 11*60, 13*60
	require.NoError(t, f.gateway.SetPreference(ctx, model.NotificationPreference{
		RecipientID:     1,
		Type:            model.NotificationMention,
		Method:          model.DeliveryRealtime,
		QuietHoursStart: &start,
		QuietHoursEnd:   &end,
	}))

	deferred, err := f.engine.Notify(ctx, 1, model.NotificationMention, post(1), model.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, DecisionDeferred, deferred.Decision)

	urgent, err := f.engine.Notify(ctx, 1, model.NotificationMention, post(2), model.PriorityUrgent)
	require.NoError(t, err)
	assert.Equal(t, DecisionPushed, urgent.Decision)

	n, err := f.engine.FlushDeferred(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "still inside quiet hours")

	f.clock.Set(time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC))
	n, err = f.engine.FlushDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := f.gateway.GetNotification(ctx, deferred.Notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDelivered)

	n, err = f.engine.FlushDeferred(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEngine_FlushDeferred_SkipsStoredOnlyGroups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindNotifications, 0, conn)

	require.NoError(t, f.gateway.SetPreference(ctx, model.NotificationPreference{
		RecipientID: 1, Type: model.NotificationPostLike, Method: model.DeliveryDisabled,
	}))
	for i := 1; i <= 60; i++ {
		res, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(i), model.PriorityNormal)
		require.NoError(t, err)
		require.Equal(t, DecisionDisabled, res.Decision)
	}

	start, end := 11*60, 13*60
	require.NoError(t, f.gateway.SetPreference(ctx, model.NotificationPreference{
		RecipientID:     1,
		Type:            model.NotificationMention,
		Method:          model.DeliveryRealtime,
		QuietHoursStart: &start,
		QuietHoursEnd:   &end,
	}))
	deferred, err := f.engine.Notify(ctx, 1, model.NotificationMention, post(1000), model.PriorityNormal)
	require.NoError(t, err)
	require.Equal(t, DecisionDeferred, deferred.Decision)

	f.clock.Set(time.Date(2024, 6, 3, 13, 30, 0, 0, time.UTC))
	n, err := f.engine.FlushDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := f.gateway.GetNotification(ctx, deferred.Notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDelivered)
}

func TestEngine_FlushDeferred_PagesThroughBacklog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const total = releasePage + 30
	for i := 1; i <= total; i++ {
		res, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(i), model.PriorityNormal)
		require.NoError(t, err)
		require.Equal(t, DecisionOffline, res.Decision)
	}

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindNotifications, 0, conn)

	n, err := f.engine.FlushDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, n)

	left, err := f.gateway.ListUndeliveredNotifications(ctx, 1, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestEngine_MarkReadAndBadge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.gateway.CreateMessage(ctx, 2, 1, "hello", "k1")
	require.NoError(t, err)

	a, err := f.engine.Notify(ctx, 1, model.NotificationPostLike, post(1), model.PriorityNormal)
	require.NoError(t, err)
	_, err = f.engine.Notify(ctx, 1, model.NotificationMention, post(1), model.PriorityNormal)
	require.NoError(t, err)

	badge, err := f.engine.Badge(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, badge.Notifications)
	assert.Equal(t, 1, badge.Messages)
	assert.Equal(t, 3, badge.Total())

	conn := &recordingConn{}
	f.hub.Register(1, hub.KindChat, 2, conn)

	changed, err := f.engine.MarkRead(ctx, 1, a.Notification.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.EqualValues(t, 2, conn.last()["unread"])

	changed, err = f.engine.MarkRead(ctx, 1, a.Notification.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = f.engine.MarkRead(ctx, 2, a.Notification.ID)
	assert.ErrorIs(t, err, model.ErrNotificationNotFound)

	n, err := f.engine.MarkAllRead(ctx, 1, []model.NotificationType{model.NotificationMention})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.EqualValues(t, 1, conn.last()["unread"])
	assert.EqualValues(t, 0, conn.last()["notifications"])
}

func TestRulesFrom(t *testing.T) {
	rules, err := RulesFrom(config.Grouping{Rules: map[string]config.GroupRule{
		"post_like": {Window: time.Minute, MaxSize: 3, GroupBy: "category"},
	}})
	require.NoError(t, err)
	assert.Equal(t, Rule{Window: time.Minute, MaxSize: 3, GroupBy: GroupByCategory}, rules.For(model.NotificationPostLike))
	assert.Equal(t, 10, rules.For(model.NotificationConnectionRequest).MaxSize)

	bad := []config.GroupRule{
		{Window: 0, MaxSize: 1},
		{Window: time.Minute, MaxSize: 0},
		{Window: time.Minute, MaxSize: 1, GroupBy: "sender"},
	}
	for _, r := range bad {
		_, err := RulesFrom(config.Grouping{Rules: map[string]config.GroupRule{"post_like": r}})
		assert.Error(t, err)
	}

	_, err = RulesFrom(config.Grouping{Rules: map[string]config.GroupRule{"poke": {Window: time.Minute, MaxSize: 1}}})
	assert.Error(t, err)
}

func TestRelatedKey(t *testing.T) {
	assert.Equal(t, "system", relatedKey(model.NotificationSystem, nil, GroupByEntity))
	assert.Equal(t, "connection_request|user", relatedKey(model.NotificationConnectionRequest, user(5), GroupByCategory))
	assert.Equal(t, "post_like|post:5", relatedKey(model.NotificationPostLike, post(5), GroupByEntity))
}

func TestEngine_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMocknotificationStore(ctrl)
	hubMock := mocks.NewMockpusher(ctrl)
	e := NewEngine(storeMock, hubMock, serialize.NewGuard(nil), nil, nil)

	storeMock.EXPECT().
		LatestGroup(gomock.Any(), int64(1), "post_like|post:1").
		Return(model.Notification{}, errors.New("db down"))

	_, err := e.Notify(context.Background(), 1, model.NotificationPostLike, post(1), model.PriorityNormal)
	assert.Error(t, err)
}

func TestEngine_FullGroupStartsNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMocknotificationStore(ctrl)
	hubMock := mocks.NewMockpusher(ctrl)
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	e := NewEngine(storeMock, hubMock, serialize.NewGuard(nil), nil, func() time.Time { return now })

	full := model.Notification{GroupCount: 1, WindowEndsAt: now.Add(time.Hour)}
	storeMock.EXPECT().LatestGroup(gomock.Any(), int64(1), "system").Return(full, nil)
	storeMock.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (model.Notification, error) {
			assert.Equal(t, 1, n.GroupCount)
			assert.Equal(t, now.Add(time.Hour), n.WindowEndsAt)
			assert.Equal(t, "system", n.RelatedKey)
			return n, nil
		})
	storeMock.EXPECT().GetPreference(gomock.Any(), int64(1), model.NotificationSystem).
		Return(model.DefaultPreference(1, model.NotificationSystem), nil)
	hubMock.EXPECT().SendToKind(int64(1), hub.KindNotifications, gomock.Any()).Return(0)
	storeMock.EXPECT().CountUnreadNotifications(gomock.Any(), int64(1)).Return(2, nil)
	storeMock.EXPECT().CountUnreadMessages(gomock.Any(), int64(1)).Return(0, nil)
	hubMock.EXPECT().SendToUser(int64(1), gomock.Any()).Return(0)

	res, err := e.Notify(context.Background(), 1, model.NotificationSystem, nil, model.PriorityNormal)
	require.NoError(t, err)
	assert.False(t, res.Merged)
	assert.Equal(t, DecisionOffline, res.Decision)
}
