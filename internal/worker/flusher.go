package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
)

//go:generate mockgen -source=flusher.go -destination=../mocks/worker/flusher_mock.go -package=mocks
type flushQueue interface {
	Consume(ctx context.Context, out chan<- delivery.FlushRequest, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, req delivery.FlushRequest, strategy retry.Strategy)
}

// Flusher drains flush requests from the broker with a pool of workers.
type Flusher struct {
	queue   flushQueue
	handler messageHandler
}

func NewFlusher(q flushQueue, h messageHandler) *Flusher {
	return &Flusher{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is done.
func (f *Flusher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan delivery.FlushRequest, workerCount*10)

	go func() {
		if err := f.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume flush requests")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("flush worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("flush worker shutting down")
					return
				case req, ok := <-msgChan:
					if !ok {
						return
					}

					f.handler.HandleMessage(ctx, req, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("flusher stopped")
}
