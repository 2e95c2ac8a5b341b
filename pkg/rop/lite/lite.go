package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropsplit/pkg/rop/core"
	"github.com/ib-77/ropsplit/pkg/rop/demux"
)

// Run starts lines locomotives over pull. The output closes once all of them
// are done. lines <= 0 falls back to the worker count carried by ctx, or 1.
// A value pulled when ctx is done is dropped; use RunWithHandlers to keep it.
func Run[T any](ctx context.Context, pull func() (T, bool), lines int) <-chan T {
	return RunWithHandlers(ctx, pull, core.PullHandlers[T]{}, lines)
}

func RunWithHandlers[T any](ctx context.Context, pull func() (T, bool),
	handlers core.PullHandlers[T], lines int) <-chan T {
	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan T)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, pull, out, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Split drains both views of d, each with lines goroutines. With more than one
// line per view the order within a channel is not preserved.
//
// Cancelling ctx can drop up to lines values per view that were already taken
// from d; d will not deliver them again. SplitWithHandlers reports them.
func Split[S, E any](ctx context.Context, d *demux.Demultiplexer[S, E], lines int) (<-chan S, <-chan E) {
	return SplitWithHandlers(ctx, d, lines, nil, nil)
}

// SplitWithHandlers is Split with callbacks for values pulled from d but not
// delivered because ctx was done.
func SplitWithHandlers[S, E any](ctx context.Context, d *demux.Demultiplexer[S, E], lines int,
	onCancelSuccess func(ctx context.Context, v S),
	onCancelFailure func(ctx context.Context, err E)) (<-chan S, <-chan E) {

	return RunWithHandlers(ctx, d.NextSuccess, core.PullHandlers[S]{OnCancelPulled: onCancelSuccess}, lines),
		RunWithHandlers(ctx, d.NextFailure, core.PullHandlers[E]{OnCancelPulled: onCancelFailure}, lines)
}
