package filter

import (
	"iter"

	"github.com/ib-77/ropsplit/pkg/rop"
)

// Success yields the success values of seq, dropping failures.
func Success[S, E any](seq iter.Seq[rop.Outcome[S, E]]) iter.Seq[S] {
	return SuccessWith(seq, nil)
}

// SuccessWith yields the success values of seq. onFailure, when not nil, is
// called for every failure before the next success is yielded.
func SuccessWith[S, E any](seq iter.Seq[rop.Outcome[S, E]], onFailure func(err E)) iter.Seq[S] {
	return func(yield func(S) bool) {
		for o := range seq {
			if o.IsFailure() {
				if onFailure != nil {
					onFailure(o.Err())
				}
				continue
			}
			if !yield(o.Result()) {
				return
			}
		}
	}
}

// Failure yields the failure values of seq, dropping successes.
func Failure[S, E any](seq iter.Seq[rop.Outcome[S, E]]) iter.Seq[E] {
	return FailureWith(seq, nil)
}

// FailureWith yields the failure values of seq. onSuccess, when not nil, is
// called for every success before the next failure is yielded.
func FailureWith[S, E any](seq iter.Seq[rop.Outcome[S, E]], onSuccess func(r S)) iter.Seq[E] {
	return func(yield func(E) bool) {
		for o := range seq {
			if o.IsSuccess() {
				if onSuccess != nil {
					onSuccess(o.Result())
				}
				continue
			}
			if !yield(o.Err()) {
				return
			}
		}
	}
}

// Failed yields the failure values of any outcome shape.
func Failed[O rop.Failable[E], E any](seq iter.Seq[O]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for o := range seq {
			if o.IsSuccess() {
				continue
			}
			if !yield(o.Err()) {
				return
			}
		}
	}
}

// VoidFailure yields the failure values of seq; onSuccess, when not nil,
// counts the successes as they go by.
func VoidFailure[E any](seq iter.Seq[rop.VoidOutcome[E]], onSuccess func()) iter.Seq[E] {
	if onSuccess == nil {
		return Failed[rop.VoidOutcome[E], E](seq)
	}
	return func(yield func(E) bool) {
		for o := range seq {
			if o.IsSuccess() {
				onSuccess()
				continue
			}
			if !yield(o.Err()) {
				return
			}
		}
	}
}
