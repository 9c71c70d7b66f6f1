package fut

import "context"

// Step is a single-use async function: calling it starts the computation
// and the returned channel delivers exactly one value. Combinators call a
// Step at most once and receive from its channel exactly once.
type Step[In, Out any] func(ctx context.Context, in In) <-chan Out

// Effect is an async side effect over a borrowed payload. The pointee must
// not be retained past the call.
type Effect[In any] func(ctx context.Context, in *In) <-chan struct{}

// Predicate is an async test over a borrowed payload.
type Predicate[In any] func(ctx context.Context, in *In) <-chan bool

// Go lifts a blocking function into a Step running on its own goroutine.
func Go[In, Out any](f func(ctx context.Context, in In) Out) Step[In, Out] {
	return func(ctx context.Context, in In) <-chan Out {
		out := make(chan Out, 1)
		go func() {
			defer close(out)
			out <- f(ctx, in)
		}()
		return out
	}
}

// GoEffect lifts a blocking side effect into an Effect.
func GoEffect[In any](f func(ctx context.Context, in *In)) Effect[In] {
	return func(ctx context.Context, in *In) <-chan struct{} {
		done := make(chan struct{}, 1)
		go func() {
			defer close(done)
			f(ctx, in)
			done <- struct{}{}
		}()
		return done
	}
}

// GoPredicate lifts a blocking test into a Predicate.
func GoPredicate[In any](f func(ctx context.Context, in *In) bool) Predicate[In] {
	return func(ctx context.Context, in *In) <-chan bool {
		out := make(chan bool, 1)
		go func() {
			defer close(out)
			out <- f(ctx, in)
		}()
		return out
	}
}

// Ready returns an already-settled future carrying v.
func Ready[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	close(ch)
	return ch
}
