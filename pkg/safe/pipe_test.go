package safe

import (
	"context"
	"errors"
	"testing"
)

func TestPipe_AllSucceed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := Pipe(ctx, 1,
		func(_ context.Context, v int) (int, error) { return v + 1, nil },
		func(_ context.Context, v int) (int, error) { return v * 10, nil },
		func(_ context.Context, v int) (int, error) { return v - 5, nil },
	)

	if !r.IsSuccess() || r.Value() != 15 {
		t.Fatalf("expected success with 15, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Value(), r.Err())
	}
}

func TestPipe_NoSteps(t *testing.T) {
	t.Parallel()

	r := Pipe(context.Background(), "initial")
	if !r.IsSuccess() || r.Value() != "initial" {
		t.Fatalf("expected the initial value back, got: success=%v, val=%q", r.IsSuccess(), r.Value())
	}
}

func TestPipe_ShortCircuitOnError(t *testing.T) {
	t.Parallel()

	var calls []int
	step := func(idx int, fail bool) Step[int] {
		return func(_ context.Context, v int) (int, error) {
			calls = append(calls, idx)
			if fail {
				return 0, errors.New("x")
			}
			return v + 1, nil
		}
	}

	r := Pipe(context.Background(), 0,
		step(0, false),
		step(1, true),
		step(2, false),
	)

	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	e := r.Err().(*Error)
	if e.Message() != "x" {
		t.Fatalf("expected the failing step's error, got %q", e.Message())
	}
	if len(calls) != 2 || calls[0] != 0 || calls[1] != 1 {
		t.Fatalf("exactly steps 0 and 1 must run in order, got %v", calls)
	}
}

func TestPipe_ShortCircuitOnPanic(t *testing.T) {
	t.Parallel()

	invoked := false
	r := Pipe(context.Background(), 0,
		func(_ context.Context, v int) (int, error) { return v + 1, nil },
		func(_ context.Context, v int) (int, error) { panic(errors.New("x")) },
		func(_ context.Context, v int) (int, error) { invoked = true; return v + 1, nil },
	)

	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if e := r.Err().(*Error); e.Message() != "x" {
		t.Fatalf("expected message 'x', got %q", e.Message())
	}
	if invoked {
		t.Fatalf("steps past the failing one must never start")
	}
}

func TestPipe_StrictOrder(t *testing.T) {
	t.Parallel()

	r := Pipe(context.Background(), "",
		func(_ context.Context, v string) (string, error) { return v + "a", nil },
		func(_ context.Context, v string) (string, error) { return v + "b", nil },
		func(_ context.Context, v string) (string, error) { return v + "c", nil },
	)

	if r.Value() != "abc" {
		t.Fatalf("steps must run strictly in order, got %q", r.Value())
	}
}

func TestSafePipe_AliasPipe(t *testing.T) {
	t.Parallel()

	r := SafePipe(context.Background(), 2,
		func(_ context.Context, v int) (int, error) { return v * v, nil },
	)
	if !r.IsSuccess() || r.Value() != 4 {
		t.Fatalf("SafePipe must behave like Pipe")
	}
}
