package serialize

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

type spyRecorder struct {
	entries []errlog.Entry
}

func (s *spyRecorder) Record(_ context.Context, e errlog.Entry) {
	s.entries = append(s.entries, e)
}

type panicky struct{}

func (panicky) MarshalJSON() ([]byte, error) { panic("boom") }

type broken struct{}

func (broken) MarshalJSON() ([]byte, error) { return nil, errors.New("nope") }

func TestSerialize_Message(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	m := model.Message{ID: 1, SenderID: 2, RecipientID: 3, Content: "hi", CreatedAt: created}

	out, ok := Serialize(m).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T09:00:00.000Z", out["created_at"])
	assert.Nil(t, out["delivered_at"])
	assert.Equal(t, int64(1), out["id"])
	assert.Equal(t, "hi", out["content"])
}

func TestSerialize_NotificationFlattensReference(t *testing.T) {
	id := uuid.New()
	n := model.Notification{
		ID:         id,
		Type:       model.NotificationPostLike,
		RelatedKey: "internal",
		Related:    &model.EntityRef{Type: "post", ID: "9"},
	}

	out := Serialize(n).(map[string]any)
	assert.Equal(t, id.String(), out["id"])
	assert.Equal(t, "post:9", out["related"])
	assert.NotContains(t, out, "RelatedKey")
	assert.NotContains(t, out, "related_key")
	assert.Equal(t, "post_like", out["notification_type"])
}

func TestSerialize_OmitsUnrepresentable(t *testing.T) {
	payload := map[string]any{
		"ok":      1,
		"ch":      make(chan int),
		"fn":      func() {},
		"c":       complex(1, 2),
		"nan":     math.NaN(),
		"when":    time.Unix(0, 0),
		"nested":  map[string]any{"fn": func() {}, "keep": "yes"},
		"numbers": []any{1, func() {}, 2},
	}

	out := Serialize(payload).(map[string]any)
	assert.Equal(t, int64(1), out["ok"])
	assert.NotContains(t, out, "ch")
	assert.NotContains(t, out, "fn")
	assert.NotContains(t, out, "c")
	assert.NotContains(t, out, "nan")
	assert.Equal(t, "1970-01-01T00:00:00.000Z", out["when"])
	assert.Equal(t, map[string]any{"keep": "yes"}, out["nested"])
	assert.Equal(t, []any{int64(1), int64(2)}, out["numbers"])

	_, err := json.Marshal(out)
	assert.NoError(t, err)
}

func TestValidateSerializable(t *testing.T) {
	assert.Nil(t, ValidateSerializable(map[string]any{"a": []int{1, 2}, "b": time.Now()}))

	issue := ValidateSerializable(map[string]any{"meta": map[string]any{"cb": func() {}}})
	require.NotNil(t, issue)
	assert.Equal(t, "meta.cb", issue.Field)

	issue = ValidateSerializable(map[string]any{"score": math.Inf(1)})
	require.NotNil(t, issue)
	assert.Equal(t, "score", issue.Field)

	issue = ValidateSerializable(map[string]any{"x": broken{}})
	require.NotNil(t, issue)
	assert.Equal(t, "x", issue.Field)
}

func TestSafeSerialize_NeverFails(t *testing.T) {
	type cyclic struct {
		Next *cyclic `json:"next"`
	}
	loop := &cyclic{}
	loop.Next = loop

	payloads := []any{
		nil,
		"plain",
		map[string]any{"type": "message", "at": time.Now()},
		map[string]any{"cb": func() {}},
		map[string]any{"p": panicky{}},
		loop,
		[]any{make(chan struct{})},
		model.Notification{Related: &model.EntityRef{Type: "job", ID: "1"}},
	}

	spy := &spyRecorder{}
	g := NewGuard(spy)

	for _, p := range payloads {
		var out []byte
		require.NotPanics(t, func() { out = g.SafeSerialize(context.Background(), p) })
		assert.True(t, json.Valid(out))
	}

	assert.NotEmpty(t, spy.entries)
	for _, e := range spy.entries {
		assert.Equal(t, model.CategorySerializationError, e.Category)
		assert.Contains(t, e.Context, "shape")
	}
}

func TestSafeSerialize_Fallback(t *testing.T) {
	spy := &spyRecorder{}
	g := NewGuard(spy)

	out := g.SafeSerialize(context.Background(), map[string]any{"type": "message", "cb": func() {}})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "error", decoded["type"])
	assert.Equal(t, "serialization-error", decoded["category"])

	require.Len(t, spy.entries, 1)
	assert.Equal(t, "cb", spy.entries[0].Context["field"])
	shape := spy.entries[0].Context["shape"].(map[string]string)
	assert.Equal(t, "string", shape["type"])
}

func TestShape(t *testing.T) {
	shape := Shape(map[string]any{"content": "secret", "n": 3, "at": time.Now()})
	assert.Equal(t, map[string]string{"content": "string", "n": "int", "at": "time.Time"}, shape)
}
