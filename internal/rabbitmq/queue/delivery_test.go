package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
)

func TestDecodeFlushRequest(t *testing.T) {
	body, err := json.Marshal(delivery.FlushRequest{SenderID: 1, RecipientID: 2, Force: true})
	require.NoError(t, err)

	req, err := DecodeFlushRequest(body)
	require.NoError(t, err)
	assert.Equal(t, delivery.FlushRequest{SenderID: 1, RecipientID: 2, Force: true}, req)

	for _, bad := range []string{`nope`, `{}`, `{"sender_id":1}`, `{"sender_id":-1,"recipient_id":2}`} {
		_, err := DecodeFlushRequest([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestForward_SkipsMalformedBodies(t *testing.T) {
	in := make(chan []byte, 3)
	out := make(chan delivery.FlushRequest, 3)

	in <- []byte(`garbage`)
	in <- []byte(`{"sender_id":3,"recipient_id":4}`)
	in <- []byte(`{"sender_id":5,"recipient_id":6,"force":true}`)
	close(in)

	forward(context.Background(), in, out)

	require.Len(t, out, 2)
	assert.Equal(t, delivery.FlushRequest{SenderID: 3, RecipientID: 4}, <-out)
	assert.Equal(t, delivery.FlushRequest{SenderID: 5, RecipientID: 6, Force: true}, <-out)
}

func TestForward_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan []byte, 1)
	out := make(chan delivery.FlushRequest)

	in <- []byte(`{"sender_id":3,"recipient_id":4}`)

	done := make(chan struct{})
	go func() {
		forward(ctx, in, out)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not stop")
	}
}
