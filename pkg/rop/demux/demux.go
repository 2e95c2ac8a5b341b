package demux

import (
	"iter"
	"sync"

	"github.com/google/uuid"
	"github.com/ib-77/ropsplit/pkg/rop"
	"github.com/rs/zerolog"
)

type view string

const (
	successView view = "successes"
	failureView view = "failures"
)

// Demultiplexer exposes one source of outcomes as a view of successes and a
// view of failures. It is safe for concurrent use.
type Demultiplexer[S, E any] struct {
	id  uuid.UUID
	log zerolog.Logger

	cursorMu  sync.Mutex
	next      func() (rop.Outcome[S, E], bool)
	stop      func()
	exhausted bool // guarded by cursorMu
	closed    bool // guarded by cursorMu

	successSpillover *spillover[S]
	failureSpillover *spillover[E]
}

// New wraps source. Nothing is pulled until one of the views asks for an element.
// A nil source behaves as an empty one.
func New[S, E any](source iter.Seq[rop.Outcome[S, E]], opts ...Option) *Demultiplexer[S, E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == nil {
		source = func(func(rop.Outcome[S, E]) bool) {}
	}

	id := uuid.New()
	next, stop := iter.Pull(source)

	return &Demultiplexer[S, E]{
		id:               id,
		log:              cfg.logger.With().Str("demux_id", id.String()).Logger(),
		next:             next,
		stop:             stop,
		successSpillover: newSpillover[S](cfg.initialCapacity),
		failureSpillover: newSpillover[E](cfg.initialCapacity),
	}
}

func (d *Demultiplexer[S, E]) Id() uuid.UUID {
	return d.id
}

// NextSuccess returns the next success value, or false once the source is
// exhausted (or the demultiplexer closed) and no success is buffered.
func (d *Demultiplexer[S, E]) NextSuccess() (S, bool) {
	return pull(d, successView, d.successSpillover, d.failureSpillover, splitSuccess[S, E])
}

// NextFailure returns the next failure value, or false once the source is
// exhausted (or the demultiplexer closed) and no failure is buffered.
func (d *Demultiplexer[S, E]) NextFailure() (E, bool) {
	return pull(d, failureView, d.failureSpillover, d.successSpillover, splitFailure[S, E])
}

// Successes ranges over the success view. Leaving the loop early does not close d.
func (d *Demultiplexer[S, E]) Successes() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			v, ok := d.NextSuccess()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Failures ranges over the failure view. Leaving the loop early does not close d.
func (d *Demultiplexer[S, E]) Failures() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := d.NextFailure()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Pending reports how many elements wait in each spillover buffer.
func (d *Demultiplexer[S, E]) Pending() (successes, failures int) {
	return d.successSpillover.size(), d.failureSpillover.size()
}

// Close releases the source and discards buffered elements. A source step
// running in another goroutine completes first. Close is idempotent and
// always returns nil.
func (d *Demultiplexer[S, E]) Close() error {
	d.cursorMu.Lock()
	defer d.cursorMu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if !d.exhausted {
		d.stop()
	}

	droppedSuccesses := d.successSpillover.discard()
	droppedFailures := d.failureSpillover.discard()

	d.log.Debug().
		Str("event", "closed").
		Bool("exhausted", d.exhausted).
		Int("dropped_successes", droppedSuccesses).
		Int("dropped_failures", droppedFailures).
		Msg("demultiplexer closed")

	return nil
}

func pull[S, E, Own, Other any](d *Demultiplexer[S, E], v view,
	own *spillover[Own], other *spillover[Other],
	split func(rop.Outcome[S, E]) (Own, Other, bool)) (Own, bool) {

	for {
		if value, ok := own.pop(); ok {
			return value, true
		}

		value, found, retry := advance(d, v, own, other, split)
		if !retry {
			return value, found
		}
	}
}

// advance holds the cursor until the source yields an element for v or ends.
// Elements for the other view are appended to other; own is never locked here.
// retry is set when own received elements while the caller waited for the cursor.
func advance[S, E, Own, Other any](d *Demultiplexer[S, E], v view,
	own *spillover[Own], other *spillover[Other],
	split func(rop.Outcome[S, E]) (Own, Other, bool)) (value Own, found, retry bool) {

	d.cursorMu.Lock()
	defer d.cursorMu.Unlock()

	// own only grows under the cursor, so no push can be missed past this point
	if own.hasPending() {
		return value, false, true
	}

	for !d.exhausted && !d.closed {
		o, ok := d.next()
		if !ok {
			d.exhausted = true
			d.stop()
			d.log.Debug().
				Str("event", "exhausted").
				Str("view", string(v)).
				Msg("source exhausted")
			break
		}

		mine, theirs, isOwn := split(o)
		if isOwn {
			return mine, true, false
		}

		other.push(theirs)
		d.log.Debug().
			Str("event", "spill").
			Str("view", string(v)).
			Str("outcome_id", o.Id().String()).
			Int("pending", other.size()).
			Msg("buffered element for opposite view")
	}

	return value, false, false
}

func splitSuccess[S, E any](o rop.Outcome[S, E]) (s S, e E, isSuccess bool) {
	o.Switch(
		func(v S) { s, isSuccess = v, true },
		func(err E) { e = err })
	return s, e, isSuccess
}

func splitFailure[S, E any](o rop.Outcome[S, E]) (e E, s S, isFailure bool) {
	o.Switch(
		func(v S) { s = v },
		func(err E) { e, isFailure = err, true })
	return e, s, isFailure
}
