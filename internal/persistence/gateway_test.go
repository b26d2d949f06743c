package persistence_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/persistence"
	"github.com/Techhackontime999/LinkUp-sub000/internal/repository/memory"
)

func newGateway(t *testing.T) *persistence.Gateway {
	t.Helper()

	g := persistence.New(memory.New().Repositories(), persistence.Options{Workers: 4, QueueSize: 16})
	t.Cleanup(g.Close)

	return g
}

func TestGateway_CreateMessageIdempotent(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		ids = make(chan int64, 10)
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, _, err := g.CreateMessage(ctx, 1, 2, "hi", "k1")
			assert.NoError(t, err)
			ids <- m.ID
		}()
	}
	wg.Wait()
	close(ids)

	var first int64
	for id := range ids {
		if first == 0 {
			first = id
		}
		assert.Equal(t, first, id)
	}

	page, err := g.GetConversationMessages(ctx, 1, 2, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestGateway_CreateMessageValidation(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		sender    int64
		recipient int64
		content   string
		key       string
		field     string
	}{
		{name: "empty content", sender: 1, recipient: 2, content: "", key: "k", field: "content"},
		{name: "oversized content", sender: 1, recipient: 2, content: strings.Repeat("x", model.MaxContentLength+1), key: "k", field: "content"},
		{name: "missing key", sender: 1, recipient: 2, content: "hi", key: " ", field: "idempotency-key"},
		{name: "self message", sender: 1, recipient: 1, content: "hi", key: "k", field: "recipient_id"},
		{name: "bad sender", sender: 0, recipient: 1, content: "hi", key: "k", field: "sender_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := g.CreateMessage(ctx, tt.sender, tt.recipient, tt.content, tt.key)
			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestGateway_MarkTransitionsIdempotent(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	m, created, err := g.CreateMessage(ctx, 1, 2, "hi", "k1")
	require.NoError(t, err)
	require.True(t, created)

	delivered, err := g.MarkDelivered(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)

	again, err := g.MarkDelivered(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, *delivered.DeliveredAt, *again.DeliveredAt)

	read, err := g.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt)
	assert.Equal(t, *delivered.DeliveredAt, *read.DeliveredAt)

	_, err = g.MarkRead(ctx, m.ID+100)
	assert.ErrorIs(t, err, model.ErrMessageNotFound)
}

func TestGateway_ConversationPaging(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	for i := 0; i < 120; i++ {
		sender, recipient := int64(1), int64(2)
		if i%2 == 1 {
			sender, recipient = 2, 1
		}
		_, _, err := g.CreateMessage(ctx, sender, recipient, "m", fmt.Sprintf("k%d", i))
		require.NoError(t, err)
	}

	page, err := g.GetConversationMessages(ctx, 2, 1, 0, 1000)
	require.NoError(t, err)
	require.Len(t, page, persistence.MaxPageSize)
	assert.Greater(t, page[0].ID, page[1].ID)

	older, err := g.GetConversationMessages(ctx, 1, 2, page[len(page)-1].ID, 50)
	require.NoError(t, err)
	assert.Len(t, older, 20)

	assert.Equal(t, persistence.DefaultPageSize, persistence.ClampPageSize(-1))
}

func TestGateway_SetPresenceConcurrent(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(online bool) {
			defer wg.Done()
			_, err := g.SetPresence(ctx, 9, online)
			assert.NoError(t, err)
		}(i%2 == 0)
	}
	wg.Wait()

	_, err := g.SetPresence(ctx, 9, false)
	require.NoError(t, err)

	rec, err := g.GetPresence(ctx, 9)
	require.NoError(t, err)
	assert.False(t, rec.Online)
}

func TestGateway_Preferences(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	p, err := g.GetPreference(ctx, 3, model.NotificationMention)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryRealtime, p.Method)

	start, end := 22*60, 7*60
	require.NoError(t, g.SetPreference(ctx, model.NotificationPreference{
		RecipientID:     3,
		Type:            model.NotificationMention,
		Method:          model.DeliveryDisabled,
		QuietHoursStart: &start,
		QuietHoursEnd:   &end,
	}))

	p, err = g.GetPreference(ctx, 3, model.NotificationMention)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryDisabled, p.Method)

	err = g.SetPreference(ctx, model.NotificationPreference{RecipientID: 3, Type: model.NotificationMention, Method: "sms"})
	assert.True(t, model.IsValidation(err))

	err = g.SetPreference(ctx, model.NotificationPreference{RecipientID: 3, Type: model.NotificationMention, Method: model.DeliveryRealtime, QuietHoursStart: &start})
	assert.True(t, model.IsValidation(err))
}

func TestGateway_Closed(t *testing.T) {
	g := persistence.New(memory.New().Repositories(), persistence.Options{Workers: 1})
	g.Close()
	g.Close()

	_, _, err := g.CreateMessage(context.Background(), 1, 2, "hi", "k1")
	assert.ErrorIs(t, err, persistence.ErrGatewayClosed)
}

func TestGateway_ContextCancelled(t *testing.T) {
	g := newGateway(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	_, err := g.GetMessage(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
