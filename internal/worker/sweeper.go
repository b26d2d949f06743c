package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks
type queueSweeper interface {
	Sweep(ctx context.Context) (delivery.SweepResult, error)
}

type deferredFlusher interface {
	FlushDeferred(ctx context.Context) (int, error)
}

// Sweeper periodically retries due queue items and releases notifications
// held back by quiet hours.
type Sweeper struct {
	queue    queueSweeper
	deferred deferredFlusher
}

// NewSweeper creates a Sweeper. deferred may be nil.
func NewSweeper(q queueSweeper, deferred deferredFlusher) *Sweeper {
	return &Sweeper{queue: q, deferred: deferred}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one sweep.
func (s *Sweeper) Tick(ctx context.Context) {
	res, err := s.queue.Sweep(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("queue sweep failed")
	} else if res.Delivered > 0 {
		zlog.Logger.Info().Int("pairs", res.Pairs).Int("delivered", res.Delivered).Msg("queue sweep delivered")
	}

	if s.deferred == nil {
		return
	}

	n, err := s.deferred.FlushDeferred(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("deferred notification flush failed")
		return
	}
	if n > 0 {
		zlog.Logger.Info().Int("released", n).Msg("released deferred notifications")
	}
}
