package inner

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-outcome container: it holds either a success payload T
// or a failure payload E, never both. Unlike (T, error) the failure side
// carries an arbitrary payload type.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Value returns the success payload (zero value on failure).
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure payload (zero value on success).
func (r Result[T, E]) Err() E {
	return r.failure
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

func (r Result[T, E]) GetOr(def T) T {
	if !r.isOk {
		return def
	}
	return r.value
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// IntoResult is the identity conversion: the receiver is returned
// unchanged, stamp included.
func (r Result[T, E]) IntoResult() Result[T, E] {
	return r
}

// Wrap converts an ordinary (value, error) pair into a Result.
func Wrap[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Unwrap converts a Result with an error failure payload back into the
// ordinary (value, error) pair.
func Unwrap[T any](r Result[T, error]) (T, error) {
	if r.isOk {
		return r.value, nil
	}
	return r.value, r.failure
}

// Map transforms the success payload, passing failures through.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.failure)
}

// MapErr transforms the failure payload, passing successes through.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.failure))
}
