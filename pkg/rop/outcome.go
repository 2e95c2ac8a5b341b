package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is either a Success carrying an S or a Failure carrying an E.
// The zero Outcome is a Failure carrying the zero E.
type Outcome[S, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	err       E
	isSuccess bool
}

func Success[S, E any](value S) Outcome[S, E] {
	return Outcome[S, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		isSuccess: true,
	}
}

func Failure[S, E any](err E) Outcome[S, E] {
	return Outcome[S, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isSuccess: false,
	}
}

func (o Outcome[S, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[S, E]) IsFailure() bool {
	return !o.isSuccess
}

// Result returns the success value. It panics on a Failure.
func (o Outcome[S, E]) Result() S {
	if !o.isSuccess {
		panic(fmt.Errorf("%w: Result called on %s", ErrWrongVariant, o))
	}
	return o.value
}

// Err returns the failure value. It panics on a Success.
func (o Outcome[S, E]) Err() E {
	if o.isSuccess {
		panic(fmt.Errorf("%w: Err called on %s", ErrWrongVariant, o))
	}
	return o.err
}

// Switch calls exactly one of the handlers. Both are required.
func (o Outcome[S, E]) Switch(onSuccess func(S), onFailure func(E)) {
	mustHandle(onSuccess != nil, onFailure != nil)

	if o.isSuccess {
		onSuccess(o.value)
	} else {
		onFailure(o.err)
	}
}

// Match folds o into an R through exactly one of the handlers. Both are required.
func Match[S, E, R any](o Outcome[S, E], onSuccess func(S) R, onFailure func(E) R) R {
	mustHandle(onSuccess != nil, onFailure != nil)

	if o.isSuccess {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

func (o Outcome[S, E]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[S, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[S, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
