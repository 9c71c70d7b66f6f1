package chain

import (
	"context"

	"github.com/ib-77/ropfut/pkg/rop"
	"github.com/ib-77/ropfut/pkg/rop/fut"
)

type Chain[T, E any] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T, E any](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, rop.Success[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes a step that already returns a rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess fut.Step[T, rop.Result[T, E]]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.AndThen(c.ctx, c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess fut.Step[T, T]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.Map(c.ctx, c.res, onSuccess)}
}

// MapErr transforms the failure payload, leaving a success untouched
func (c Chain[T, E]) MapErr(onError fut.Step[E, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.MapErr(c.ctx, c.res, onError)}
}

// OrElse recovers a failure with a step that may flip back to success
func (c Chain[T, E]) OrElse(onError fut.Step[E, rop.Result[T, E]]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.OrElse(c.ctx, c.res, onError)}
}

// Ensure triggers a side effect on success without changing the result
func (c Chain[T, E]) Ensure(onSuccess fut.Effect[T]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.Inspect(c.ctx, c.res, onSuccess)}
}

// EnsureErr triggers a side effect on failure without changing the result
func (c Chain[T, E]) EnsureErr(onError fut.Effect[E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fut.InspectErr(c.ctx, c.res, onError)}
}

// Check tests the success value; any failure is false
func (c Chain[T, E]) Check(test fut.Predicate[T]) bool {
	return fut.IsSuccessAnd(c.ctx, c.res, test)
}

// UnwrapOr collapses the chain to the success value or the given default
func (c Chain[T, E]) UnwrapOr(defaultV T) T {
	if c.res.IsSuccess() {
		return c.res.Result()
	}
	return defaultV
}

// UnwrapOrElse collapses the chain to the success value or the fallback
// produced from the failure payload
func (c Chain[T, E]) UnwrapOrElse(fallbackOnError fut.Step[E, T]) T {
	return fut.UnwrapOrElse(c.ctx, c.res, fallbackOnError)
}

// Finally collapses the chain to a final value; exactly one handler runs
func (c Chain[T, E]) Finally(onError fut.Step[E, T], onSuccess fut.Step[T, T]) T {
	return fut.MapOrElse(c.ctx, c.res, onError, onSuccess)
}
