package flush

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/flush/mock.go -package=mocks
type pairFlusher interface {
	FlushPair(ctx context.Context, pair model.Pair, force bool) (int, error)
}

// Handler runs the flush requests taken from the broker.
type Handler struct {
	manager pairFlusher
}

func NewHandler(m pairFlusher) *Handler {
	return &Handler{
		manager: m,
	}
}

// HandleMessage flushes the pair named by req. Store failures are retried
// with strategy; items that fail to deliver stay queued for the sweeper.
func (h *Handler) HandleMessage(ctx context.Context, req delivery.FlushRequest, strategy retry.Strategy) {
	var delivered int

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			n, err := h.manager.FlushPair(ctx, req.Pair(), req.Force)
			delivered += n
			return err
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).
			Int64("sender_id", req.SenderID).
			Int64("recipient_id", req.RecipientID).
			Msg("failed to flush pair")
		return
	}

	zlog.Logger.Debug().
		Int64("sender_id", req.SenderID).
		Int64("recipient_id", req.RecipientID).
		Int("delivered", delivered).
		Msg("flushed pair")
}
