package safe

import "context"

// Step is one stage of a Pipe: it receives the previous value and blocks
// until its own outcome is ready.
type Step[T any] func(ctx context.Context, value T) (T, error)

// Pipe runs steps strictly in order, feeding each the previous value.
// The first failing step (returned error or panic) stops the run; later
// steps are never invoked and the failure is normalized into the result.
// When every step succeeds the result carries the last step's value.
func Pipe[T any](ctx context.Context, initial T, steps ...Step[T]) Result[T] {
	current := initial
	for _, step := range steps {
		out, err := runStep(ctx, step, current)
		if err != nil {
			return Fail[T](err)
		}
		current = out
	}
	return Success(current)
}

// SafePipe is an alias of Pipe.
func SafePipe[T any](ctx context.Context, initial T, steps ...Step[T]) Result[T] {
	return Pipe(ctx, initial, steps...)
}

func runStep[T any](ctx context.Context, step Step[T], in T) (out T, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = Normalize(v)
		}
	}()

	out, stepErr := step(ctx, in)
	if stepErr != nil {
		var zero T
		return zero, Normalize(stepErr)
	}
	return out, nil
}
