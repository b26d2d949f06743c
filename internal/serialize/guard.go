package serialize

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

var fallback = []byte(`{"type":"error","category":"serialization-error","code":"internal","message":"payload could not be serialized"}`)

// Fallback returns the payload sent in place of one that failed to serialize.
func Fallback() []byte {
	out := make([]byte, len(fallback))
	copy(out, fallback)
	return out
}

type recorder interface {
	Record(ctx context.Context, e errlog.Entry)
}

// Guard serializes outbound payloads and never fails.
type Guard struct {
	rec recorder
}

// NewGuard creates a guard reporting rejected payloads to rec.
func NewGuard(rec recorder) *Guard {
	return &Guard{rec: rec}
}

// SafeSerialize encodes payload as JSON. When the payload cannot be encoded
// the failure is recorded and Fallback() is returned instead.
func (g *Guard) SafeSerialize(ctx context.Context, payload any) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			g.report(ctx, payload, &Issue{Reason: fmt.Sprintf("panic: %v", r)})
			out = Fallback()
		}
	}()

	if issue := ValidateSerializable(payload); issue != nil {
		g.report(ctx, payload, issue)
		return Fallback()
	}

	b, err := json.Marshal(Serialize(payload))
	if err != nil {
		g.report(ctx, payload, &Issue{Reason: err.Error()})
		return Fallback()
	}

	return b
}

func (g *Guard) report(ctx context.Context, payload any, issue *Issue) {
	if g == nil || g.rec == nil {
		return
	}

	fields := map[string]any{"reason": issue.Reason, "shape": shapeOf(payload)}
	if issue.Field != "" {
		fields["field"] = issue.Field
	}

	g.rec.Record(ctx, errlog.Entry{
		Category: model.CategorySerializationError,
		Severity: model.SeverityWarning,
		Message:  "outbound payload replaced with fallback",
		Context:  fields,
	})
}

func shapeOf(payload any) (shape map[string]string) {
	defer func() {
		if recover() != nil {
			shape = map[string]string{"$": fmt.Sprintf("%T", payload)}
		}
	}()
	return Shape(payload)
}
