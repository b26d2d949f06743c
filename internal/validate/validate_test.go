package validate

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

func newValidator() *Validator {
	return New(validator.New())
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Field
}

func TestParse_SendMessage(t *testing.T) {
	val := newValidator()

	cmd, err := val.Parse(map[string]any{"type": "send-message", "content": "hi", "idempotency-key": "k1"})
	require.NoError(t, err)
	assert.Equal(t, SendMessage{Content: "hi", IdempotencyKey: "k1"}, cmd)

	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{name: "missing content", payload: map[string]any{"type": "send-message", "idempotency-key": "k"}, field: "content"},
		{name: "blank content", payload: map[string]any{"type": "send-message", "content": "  ", "idempotency-key": "k"}, field: "content"},
		{name: "numeric content", payload: map[string]any{"type": "send-message", "content": 5.0, "idempotency-key": "k"}, field: "content"},
		{name: "oversized content", payload: map[string]any{"type": "send-message", "content": strings.Repeat("a", 5001), "idempotency-key": "k"}, field: "content"},
		{name: "missing key", payload: map[string]any{"type": "send-message", "content": "hi"}, field: "idempotency-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := val.Parse(tt.payload)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

func TestParse_Shapes(t *testing.T) {
	val := newValidator()

	for _, payload := range []any{nil, "send-message", []any{"type", "send-message"}, 42.0} {
		_, err := val.Parse(payload)
		assert.True(t, model.IsValidation(err))
	}

	_, err := val.Parse(map[string]any{"content": "hi"})
	assert.Equal(t, "type", fieldOf(t, err))

	_, err = val.Parse(map[string]any{"type": "delete-everything"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestParse_Numbers(t *testing.T) {
	val := newValidator()

	cmd, err := val.Parse(map[string]any{"type": "read-receipt", "message-id": 12.0})
	require.NoError(t, err)
	assert.Equal(t, ReadReceipt{MessageID: 12}, cmd)

	cmd, err = val.Parse(map[string]any{"type": "read-receipt", "message-id": "13"})
	require.NoError(t, err)
	assert.Equal(t, ReadReceipt{MessageID: 13}, cmd)

	_, err = val.Parse(map[string]any{"type": "read-receipt", "message-id": 1.5})
	assert.Equal(t, "message-id", fieldOf(t, err))

	_, err = val.Parse(map[string]any{"type": "read-receipt", "message-id": 0.0})
	assert.Equal(t, "message-id", fieldOf(t, err))

	_, err = val.Parse(map[string]any{"type": "read-receipt"})
	assert.Equal(t, "message-id", fieldOf(t, err))

	cmd, err = val.Parse(map[string]any{"type": "sync-request", "before-id": 40.0, "limit": 20.0})
	require.NoError(t, err)
	assert.Equal(t, SyncRequest{BeforeID: 40, Limit: 20}, cmd)

	_, err = val.Parse(map[string]any{"type": "sync-request", "limit": 500.0})
	assert.Equal(t, "limit", fieldOf(t, err))
}

func TestParse_Notifications(t *testing.T) {
	val := newValidator()
	id := uuid.New()

	cmd, err := val.Parse(map[string]any{"type": "mark-read", "notification-id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, MarkRead{NotificationID: id}, cmd)

	_, err = val.Parse(map[string]any{"type": "mark-read", "notification-id": "nope"})
	assert.Equal(t, "notification-id", fieldOf(t, err))

	cmd, err = val.Parse(map[string]any{"type": "mark-all-read", "notification-type": []any{"mention", "post_like"}})
	require.NoError(t, err)
	assert.Equal(t, MarkAllRead{Types: []model.NotificationType{model.NotificationMention, model.NotificationPostLike}}, cmd)

	_, err = val.Parse(map[string]any{"type": "mark-all-read", "notification-type": "gossip"})
	assert.Equal(t, "notification-type", fieldOf(t, err))

	cmd, err = val.Parse(map[string]any{"type": "typing"})
	require.NoError(t, err)
	assert.Equal(t, wire.TypeTyping, cmd.Type())
}

func TestValidateMessageData_TypeMismatch(t *testing.T) {
	val := newValidator()

	_, err := val.ValidateMessageData(map[string]any{"type": "typing"}, wire.TypeSendMessage)
	assert.Equal(t, "type", fieldOf(t, err))
}

func TestDecode(t *testing.T) {
	m, err := Decode([]byte(` {"type":"typing"} `))
	require.NoError(t, err)
	assert.Equal(t, "typing", m["type"])

	for _, raw := range []string{"", "[]", `"x"`, "{", "null"} {
		_, err := Decode([]byte(raw))
		assert.True(t, model.IsValidation(err), raw)
	}
}

func TestSafeGet(t *testing.T) {
	m := map[string]any{"n": 1.0, "s": "x"}

	assert.Equal(t, 1.0, SafeGet(m, "n", 0.0))
	assert.Equal(t, "dflt", SafeGet(m, "n", "dflt"))
	assert.Equal(t, "dflt", SafeGet(m, "missing", "dflt"))
	assert.Equal(t, "dflt", SafeGet([]any{"n", 1}, "n", "dflt"))
	assert.Equal(t, "dflt", SafeGet(nil, "n", "dflt"))
	assert.Equal(t, "v", SafeGet(map[string]string{"k": "v"}, "k", ""))

	type names map[string]int
	assert.Equal(t, 3, SafeGet(names{"a": 3}, "a", 0))
}

func TestValidateConnectionHeaders(t *testing.T) {
	want := map[string]string{"x-user-id": "7", "origin": "https://app"}

	shapes := []any{
		http.Header{"X-User-Id": {"7"}, "Origin": {"https://app"}},
		map[string][]string{"X-User-ID": {"7"}, "Origin": {"https://app"}},
		map[string]string{"x-user-id": "7", "ORIGIN": "https://app"},
		map[string]any{"X-User-ID": 7.0, "Origin": []any{"https://app"}},
		[][2]string{{"X-User-ID", "7"}, {"Origin", "https://app"}},
		[][2][]byte{{[]byte("x-user-id"), []byte("7")}, {[]byte("origin"), []byte("https://app")}},
		[]any{[]any{"X-User-ID", "7"}, []any{"Origin", "https://app"}, "garbage"},
	}

	for _, shape := range shapes {
		got, err := ValidateConnectionHeaders(shape)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	joined, err := ValidateConnectionHeaders([][2]string{{"Accept", "a"}, {"accept", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "a, b", joined["accept"])

	_, err = ValidateConnectionHeaders(nil)
	assert.True(t, model.IsValidation(err))
	_, err = ValidateConnectionHeaders(42)
	assert.True(t, model.IsValidation(err))
}

func TestUserID(t *testing.T) {
	id, err := UserID(map[string]string{"x-user-id": "42"}, "X-User-ID")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, h := range []map[string]string{{}, {"x-user-id": "abc"}, {"x-user-id": "-1"}, {"x-user-id": "0"}} {
		_, err := UserID(h, "X-User-ID")
		assert.True(t, model.IsValidation(err))
	}
}
