package core

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type PullHandlers[T any] struct {
	// OnPulled runs after v was handed to outCh
	OnPulled func(ctx context.Context, v T)
	// OnCancelPulled receives a value that was already pulled when ctx was
	// done and could not be handed to outCh. The puller will not return it again.
	OnCancelPulled func(ctx context.Context, v T)
}

// Locomotive calls pull until it reports the end or ctx is done, forwarding
// every value to outCh. Several locomotives may share one pull as long as
// pull is safe for concurrent use.
func Locomotive[T any](ctx context.Context, pull func() (T, bool), outCh chan<- T,
	handlers PullHandlers[T], wg *sync.WaitGroup) {
	defer wg.Done()

	log := zerolog.Ctx(ctx)
	forwarded := 0

	for {
		if ctx.Err() != nil {
			log.Debug().Int("forwarded", forwarded).Err(ctx.Err()).Msg("locomotive stopped")
			return
		}

		v, ok := pull()
		if !ok {
			log.Debug().Int("forwarded", forwarded).Msg("locomotive drained")
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Int("forwarded", forwarded).Err(ctx.Err()).
				Bool("handled", handlers.OnCancelPulled != nil).
				Msg("locomotive stopped with a pulled value")
			if handlers.OnCancelPulled != nil {
				handlers.OnCancelPulled(ctx, v)
			}
			return
		case outCh <- v:
			forwarded++
			if handlers.OnPulled != nil {
				handlers.OnPulled(ctx, v)
			}
		}
	}
}
