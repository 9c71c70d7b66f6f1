package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropfut/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Failed[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T, E](err)
}

func Map[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	mapOnSuccess func(ctx context.Context, r T) U) rop.Result[U, E] {

	if input.IsSuccess() {
		return rop.Success[U, E](mapOnSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[U](input)
}

func MapOr[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	defaultV U,
	mapOnSuccess func(ctx context.Context, r T) U) U {

	if input.IsSuccess() {
		return mapOnSuccess(ctx, input.Result())
	}
	return defaultV
}

func MapOrElse[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	mapOnError func(ctx context.Context, err E) U,
	mapOnSuccess func(ctx context.Context, r T) U) U {

	if input.IsSuccess() {
		return mapOnSuccess(ctx, input.Result())
	}
	return mapOnError(ctx, input.Err())
}

func MapErr[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	mapOnError func(ctx context.Context, err E) F) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.SuccessFrom[F](input)
	}
	return rop.Fail[T, F](mapOnError(ctx, input.Err()))
}

func Inspect[T, E any](ctx context.Context,
	input rop.Result[T, E],
	sideEffect func(ctx context.Context, r *T)) rop.Result[T, E] {

	if input.IsSuccess() {
		v := input.Result()
		sideEffect(ctx, &v)
	}
	return input
}

func InspectErr[T, E any](ctx context.Context,
	input rop.Result[T, E],
	sideEffect func(ctx context.Context, err *E)) rop.Result[T, E] {

	if input.IsFailure() {
		e := input.Err()
		sideEffect(ctx, &e)
	}
	return input
}

func AndThen[T, E, U any](ctx context.Context,
	input rop.Result[T, E],
	switchOnSuccess func(ctx context.Context, r T) rop.Result[U, E]) rop.Result[U, E] {

	if input.IsSuccess() {
		return switchOnSuccess(ctx, input.Result())
	}
	return rop.FailFrom[U](input)
}

func OrElse[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	switchOnError func(ctx context.Context, err E) rop.Result[T, F]) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.SuccessFrom[F](input)
	}
	return switchOnError(ctx, input.Err())
}

func UnwrapOrElse[T, E any](ctx context.Context,
	input rop.Result[T, E],
	fallbackOnError func(ctx context.Context, err E) T) T {

	if input.IsSuccess() {
		return input.Result()
	}
	return fallbackOnError(ctx, input.Err())
}

func IsSuccessAnd[T, E any](ctx context.Context,
	input rop.Result[T, E],
	test func(ctx context.Context, r *T) bool) bool {

	if input.IsSuccess() {
		v := input.Result()
		return test(ctx, &v)
	}
	return false
}

func IsErrAnd[T, E any](ctx context.Context,
	input rop.Result[T, E],
	test func(ctx context.Context, err *E) bool) bool {

	if input.IsFailure() {
		e := input.Err()
		return test(ctx, &e)
	}
	return false
}

// Try calls a function following Go's (value, error) convention and
// converts a non-nil error to a failure.
func Try[In, Out any](ctx context.Context, input rop.Res[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Res[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out, error](err)
		}

		return rop.Success[Out, error](out)
	}

	return rop.FailFrom[Out](input)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Res[T] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Res[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Res[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T, error](errors.New(errMsg))
		}
	}
	return input
}

// Finally collapses the result to a final value via success/error handlers.
func Finally[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
