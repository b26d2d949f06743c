package hub

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
)

type fakeConn struct {
	mu       sync.Mutex
	frames   [][]byte
	fail     bool
	closed   bool
	inflight atomic.Int32
	overlap  atomic.Bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	if f.inflight.Add(1) > 1 {
		f.overlap.Store(true)
	}
	defer f.inflight.Add(-1)
	time.Sleep(50 * time.Microsecond)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return errors.New("broken pipe")
	}
	f.frames = append(f.frames, append([]byte(nil), data...))
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := New(time.Second)

	a := h.Register(1, KindChat, 2, &fakeConn{})
	b := h.Register(1, KindNotifications, 0, &fakeConn{})
	assert.Equal(t, 2, h.Connections(1))
	assert.Equal(t, []int64{1}, h.OnlineUsers())

	assert.Equal(t, 1, h.Unregister(a))
	assert.Equal(t, 1, h.Unregister(a), "second unregister is a no-op")
	assert.Equal(t, 0, h.Unregister(b))
	assert.Empty(t, h.OnlineUsers())
}

func TestHub_LeavesOnlineUsersToPresence(t *testing.T) {
	h := New(time.Second)
	metrics.OnlineUsers.Set(0)

	a := h.Register(1, KindChat, 2, &fakeConn{})
	h.Register(3, KindNotifications, 0, &fakeConn{})
	assert.Zero(t, testutil.ToFloat64(metrics.OnlineUsers))

	h.Unregister(a)
	assert.Zero(t, testutil.ToFloat64(metrics.OnlineUsers))
}

func TestHub_Routing(t *testing.T) {
	h := New(time.Second)

	chatWith2 := &fakeConn{}
	chatWith3 := &fakeConn{}
	notif := &fakeConn{}
	observer := &fakeConn{}

	h.Register(1, KindChat, 2, chatWith2)
	h.Register(1, KindChat, 3, chatWith3)
	h.Register(1, KindNotifications, 0, notif)
	h.Register(2, KindChat, 1, observer)

	assert.Equal(t, 1, h.SendToChat(1, 2, []byte(`a`)))
	assert.Equal(t, 1, h.SendToKind(1, KindNotifications, []byte(`b`)))
	assert.Equal(t, 3, h.SendToUser(1, []byte(`c`)))
	assert.Equal(t, 1, h.SendToObservers(1, []byte(`d`)))

	assert.Equal(t, 2, chatWith2.count())
	assert.Equal(t, 1, chatWith3.count())
	assert.Equal(t, 2, notif.count())
	assert.Equal(t, 1, observer.count())
}

func TestHub_Deliver(t *testing.T) {
	h := New(time.Second)
	ctx := context.Background()

	// recipient 2 is online but not in the conversation with 1
	h.Register(2, KindNotifications, 0, &fakeConn{})
	assert.ErrorIs(t, h.Deliver(ctx, 1, 2, []byte(`x`)), ErrRecipientUnreachable)

	conv := &fakeConn{}
	h.Register(2, KindChat, 1, conv)
	require.NoError(t, h.Deliver(ctx, 1, 2, []byte(`x`)))
	assert.Equal(t, 1, conv.count())

	conv.fail = true
	assert.ErrorIs(t, h.Deliver(ctx, 1, 2, []byte(`y`)), ErrRecipientUnreachable)
	assert.True(t, conv.closed)
}

func TestClient_SerializesWrites(t *testing.T) {
	h := New(0)
	conn := &fakeConn{}
	c := h.Register(1, KindChat, 2, conn)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Send([]byte(`x`)))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, conn.count())
	assert.False(t, conn.overlap.Load())

	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Send([]byte(`x`)), ErrClientClosed)
}
