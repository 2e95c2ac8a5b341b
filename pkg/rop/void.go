package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VoidOutcome is the Outcome of an operation that has nothing to return on success.
// The zero VoidOutcome is a Failure carrying the zero E.
type VoidOutcome[E any] struct {
	id        uuid.UUID
	createdAt time.Time
	err       E
	isSuccess bool
}

func VoidSuccess[E any]() VoidOutcome[E] {
	return VoidOutcome[E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		isSuccess: true,
	}
}

func VoidFailure[E any](err E) VoidOutcome[E] {
	return VoidOutcome[E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func (o VoidOutcome[E]) IsSuccess() bool {
	return o.isSuccess
}

func (o VoidOutcome[E]) IsFailure() bool {
	return !o.isSuccess
}

// Err returns the failure value. It panics on a Success.
func (o VoidOutcome[E]) Err() E {
	if o.isSuccess {
		panic(fmt.Errorf("%w: Err called on %s", ErrWrongVariant, o))
	}
	return o.err
}

func (o VoidOutcome[E]) Switch(onSuccess func(), onFailure func(E)) {
	mustHandle(onSuccess != nil, onFailure != nil)

	if o.isSuccess {
		onSuccess()
	} else {
		onFailure(o.err)
	}
}

func MatchVoid[E, R any](o VoidOutcome[E], onSuccess func() R, onFailure func(E) R) R {
	mustHandle(onSuccess != nil, onFailure != nil)

	if o.isSuccess {
		return onSuccess()
	}
	return onFailure(o.err)
}

func (o VoidOutcome[E]) Id() uuid.UUID {
	return o.id
}

func (o VoidOutcome[E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o VoidOutcome[E]) String() string {
	if o.isSuccess {
		return "Success()"
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
