package rop

import (
	"time"

	"github.com/google/uuid"
)

// Traceable is implemented by every outcome shape.
type Traceable interface {
	// Id is unique per constructed outcome
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Failable is any outcome that may carry an E.
type Failable[E any] interface {
	Traceable
	// IsSuccess reports which variant is active
	IsSuccess() bool
	// Err returns the failure value; it panics on a success
	Err() E
}

var (
	_ Failable[error] = Outcome[int, error]{}
	_ Failable[error] = VoidOutcome[error]{}
)
