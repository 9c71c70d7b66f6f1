package fut

import (
	"context"

	"github.com/ib-77/ropfut/pkg/rop"
)

// Map awaits mapOnSuccess over the success value; a failure passes through
// untouched and the step never runs.
func Map[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	mapOnSuccess Step[T, U]) rop.Result[U, E] {

	if input.IsSuccess() {
		return rop.Success[U, E](<-mapOnSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[U](input)
}

// MapOr awaits mapOnSuccess over the success value, or returns defaultV on
// failure without invoking the step.
func MapOr[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	defaultV U,
	mapOnSuccess Step[T, U]) U {

	if input.IsSuccess() {
		return <-mapOnSuccess(ctx, input.Result())
	}
	return defaultV
}

// MapOrElse collapses the result to a plain value; exactly one of the two
// steps runs, chosen by the active variant.
func MapOrElse[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	mapOnError Step[E, U],
	mapOnSuccess Step[T, U]) U {

	if input.IsSuccess() {
		return <-mapOnSuccess(ctx, input.Result())
	}
	return <-mapOnError(ctx, input.Err())
}

// MapErr awaits mapOnError over the failure payload; a success passes
// through untouched and the step never runs.
func MapErr[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	mapOnError Step[E, F]) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.SuccessFrom[F](input)
	}
	return rop.Fail[T, F](<-mapOnError(ctx, input.Err()))
}

// Inspect awaits the side effect over the success value and returns the
// input unchanged either way.
func Inspect[T, E any](ctx context.Context,
	input rop.Result[T, E],
	sideEffect Effect[T]) rop.Result[T, E] {

	if input.IsSuccess() {
		v := input.Result()
		<-sideEffect(ctx, &v)
	}
	return input
}

// InspectErr awaits the side effect over the failure payload and returns
// the input unchanged either way.
func InspectErr[T, E any](ctx context.Context,
	input rop.Result[T, E],
	sideEffect Effect[E]) rop.Result[T, E] {

	if input.IsFailure() {
		e := input.Err()
		<-sideEffect(ctx, &e)
	}
	return input
}

// AndThen switches to the Result produced by the step, which may itself
// fail; a failure passes through untouched and the step never runs.
func AndThen[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	switchOnSuccess Step[T, rop.Result[U, E]]) rop.Result[U, E] {

	if input.IsSuccess() {
		return <-switchOnSuccess(ctx, input.Result())
	}
	return rop.FailFrom[U](input)
}

// OrElse is the recovery path: on failure it switches to the Result
// produced by the step, which may flip back to success. A success passes
// through untouched and the step never runs.
func OrElse[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	switchOnError Step[E, rop.Result[T, F]]) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.SuccessFrom[F](input)
	}
	return <-switchOnError(ctx, input.Err())
}

// UnwrapOrElse returns the success value, or awaits the step over the
// failure payload for a fallback.
func UnwrapOrElse[T, E any](ctx context.Context,
	input rop.Result[T, E],
	fallbackOnError Step[E, T]) T {

	if input.IsSuccess() {
		return input.Result()
	}
	return <-fallbackOnError(ctx, input.Err())
}

// IsSuccessAnd reports whether the input is a success whose value passes
// the predicate; any failure is false and the predicate never runs.
func IsSuccessAnd[T, E any](ctx context.Context,
	input rop.Result[T, E],
	test Predicate[T]) bool {

	if input.IsSuccess() {
		v := input.Result()
		return <-test(ctx, &v)
	}
	return false
}

// IsErrAnd reports whether the input is a failure whose payload passes the
// predicate; any success is false and the predicate never runs.
func IsErrAnd[T, E any](ctx context.Context,
	input rop.Result[T, E],
	test Predicate[E]) bool {

	if input.IsFailure() {
		e := input.Err()
		return <-test(ctx, &e)
	}
	return false
}
