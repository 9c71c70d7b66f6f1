package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant value: either a success carrying T or a
// failure carrying E. Exactly one variant is active; the value is immutable
// once constructed.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure payload into a Result with a different success
// type. Metadata (id, createdAt) travels with the payload; nothing is
// re-derived.
func FailFrom[Out any, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom carries a success payload into a Result with a different
// failure type, preserving metadata.
func SuccessFrom[F any, In, E any](from Result[In, E]) Result[In, F] {
	return Result[In, F]{
		result:    from.result,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Res is the common case where the failure payload is a Go error.
type Res[T any] = Result[T, error]

// From converts Go's (value, error) return convention into a Res.
func From[T any](v T, err error) Res[T] {
	if err != nil {
		return Fail[T, error](err)
	}
	return Success[T, error](v)
}
