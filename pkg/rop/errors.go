package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongVariant is raised (as a panic) when an outcome is unwrapped as the variant it is not.
	ErrWrongVariant = errors.New("rop: wrong outcome variant")
	// ErrNilHandler is raised (as a panic) when an exhaustive dispatch is missing a branch.
	ErrNilHandler = errors.New("rop: nil handler")
)

func mustHandle(hasSuccess, hasFailure bool) {
	switch {
	case !hasSuccess && !hasFailure:
		panic(fmt.Errorf("%w: success and failure", ErrNilHandler))
	case !hasSuccess:
		panic(fmt.Errorf("%w: success", ErrNilHandler))
	case !hasFailure:
		panic(fmt.Errorf("%w: failure", ErrNilHandler))
	}
}

// IsProgrammingError reports whether a recovered panic value was raised by
// misuse of an outcome (wrong unwrap or missing handler).
func IsProgrammingError(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, ErrWrongVariant) || errors.Is(err, ErrNilHandler)
}
