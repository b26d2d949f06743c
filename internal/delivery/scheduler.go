package delivery

import (
	"context"
	"errors"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// ErrSchedulerFull is returned when the local flush backlog is saturated.
var ErrSchedulerFull = errors.New("flush scheduler is full")

type flusher interface {
	FlushPair(ctx context.Context, pair model.Pair, force bool) (int, error)
}

// LocalScheduler serves flush requests in-process when no broker is
// configured. Requests for a pair that is already waiting are merged.
type LocalScheduler struct {
	target  flusher
	reqs    chan FlushRequest
	mu      sync.Mutex
	waiting map[model.Pair]bool // pair -> force
}

// NewLocalScheduler creates a scheduler with the given backlog size.
func NewLocalScheduler(target flusher, backlog int) *LocalScheduler {
	if backlog <= 0 {
		backlog = 256
	}
	return &LocalScheduler{
		target:  target,
		reqs:    make(chan FlushRequest, backlog),
		waiting: make(map[model.Pair]bool),
	}
}

// RequestFlush queues a flush without blocking.
func (s *LocalScheduler) RequestFlush(_ context.Context, req FlushRequest) error {
	pair := req.Pair()

	s.mu.Lock()
	defer s.mu.Unlock()

	if force, ok := s.waiting[pair]; ok {
		s.waiting[pair] = force || req.Force
		return nil
	}

	select {
	case s.reqs <- FlushRequest{SenderID: pair.SenderID, RecipientID: pair.RecipientID}:
		s.waiting[pair] = req.Force
		return nil
	default:
		return ErrSchedulerFull
	}
}

// Run serves requests with the given number of workers until ctx is done.
func (s *LocalScheduler) Run(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case req := <-s.reqs:
					s.serve(ctx, req.Pair())
				}
			}
		}()
	}
	wg.Wait()
}

func (s *LocalScheduler) serve(ctx context.Context, pair model.Pair) {
	s.mu.Lock()
	force := s.waiting[pair]
	delete(s.waiting, pair)
	s.mu.Unlock()

	n, err := s.target.FlushPair(ctx, pair, force)
	if err != nil && !errors.Is(err, context.Canceled) {
		zlog.Logger.Error().Err(err).
			Int64("sender_id", pair.SenderID).
			Int64("recipient_id", pair.RecipientID).
			Msg("local flush failed")
		return
	}

	if n > 0 {
		zlog.Logger.Debug().
			Int64("sender_id", pair.SenderID).
			Int64("recipient_id", pair.RecipientID).
			Int("delivered", n).
			Msg("pair flushed")
	}
}
