package chain

import (
	"context"
	"testing"

	"github.com/ib-77/ropfut/pkg/rop"
	"github.com/ib-77/ropfut/pkg/rop/fut"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Success[int, string](5)).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[int, string](ctx, 7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, rop.Fail[int, string]("boom")).
		Then(fut.Go(func(ctx context.Context, v int) rop.Result[int, string] {
			called = true
			return rop.Success[int, string](v + 1)
		})).
		Result()

	if out.IsSuccess() || out.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[int, string](ctx, 3).
		Then(fut.Go(func(ctx context.Context, v int) rop.Result[int, string] {
			return rop.Success[int, string](v * 2)
		})).
		Result()

	if !out.IsSuccess() || out.Result() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestMap_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[int, string](ctx, 10).
		Map(fut.Go(func(ctx context.Context, v int) int { return v + 5 })).
		Result()

	if !out.IsSuccess() || out.Result() != 15 {
		t.Fatalf("expected success with 15, got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}

func TestOrElse_Recovers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Fail[int, string]("boom")).
		OrElse(fut.Go(func(ctx context.Context, e string) rop.Result[int, string] {
			return rop.Success[int, string](len(e))
		})).
		Result()

	if !out.IsSuccess() || out.Result() != 4 {
		t.Fatalf("expected recovery to 4, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestOrElse_SkipsOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[int, string](ctx, 1).
		OrElse(fut.Go(func(ctx context.Context, e string) rop.Result[int, string] {
			t.Errorf("recovery should not run on success")
			return rop.Fail[int, string](e)
		})).
		Result()

	if !out.IsSuccess() || out.Result() != 1 {
		t.Fatalf("expected success with 1 unchanged")
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Fail[int, string]("boom")).
		MapErr(fut.Go(func(ctx context.Context, e string) string { return e + "!" })).
		Result()

	if out.IsSuccess() || out.Err() != "boom!" {
		t.Fatalf("expected failure 'boom!', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestEnsure_And_EnsureErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := FromValue[int, string](ctx, 5).
		Ensure(fut.GoEffect(func(ctx context.Context, v *int) { seen = *v })).
		EnsureErr(fut.GoEffect(func(ctx context.Context, e *string) {
			t.Errorf("error effect should not run on success")
		})).
		Result()

	if seen != 5 {
		t.Fatalf("expected ensure to see 5, got %d", seen)
	}
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("ensure must not change the result")
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	even := fut.GoPredicate(func(ctx context.Context, v *int) bool { return *v%2 == 0 })

	if !FromValue[int, string](ctx, 2).Check(even) {
		t.Fatalf("expected true for even success")
	}
	if Start(ctx, rop.Fail[int, string]("boom")).Check(even) {
		t.Fatalf("expected false for any failure")
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := FromValue[int, string](ctx, 1).UnwrapOr(3); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Start(ctx, rop.Fail[int, string]("e")).UnwrapOr(3); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Start(ctx, rop.Fail[int, string]("boom")).
		UnwrapOrElse(fut.Go(func(ctx context.Context, e string) int { return len(e) }))
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue[int, string](ctx, 2).
		Map(fut.Go(func(ctx context.Context, v int) int { return v * 10 })).
		Finally(
			fut.Go(func(ctx context.Context, e string) int { return -1 }),
			fut.Go(func(ctx context.Context, v int) int { return v + 1 }))
	if got != 21 {
		t.Fatalf("expected 21, got %d", got)
	}
}
