package future

import (
	"context"
	"fmt"
	"sync"
)

// Future is a one-shot pending value: it settles exactly once with a
// value or an error, and every Await observes the same settlement.
// Later resolve/reject calls are ignored.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
	once  sync.Once
}

// New starts the executor on its own goroutine and returns the pending
// value it will settle. A panic out of the executor rejects the future.
func New[T any](executor func(resolve func(T), reject func(error))) *Future[T] {
	if executor == nil {
		panic("future: missing executor")
	}

	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer f.handlePanic()
		executor(f.resolve, f.reject)
	}()

	return f
}

// Go spawns a fallible function and exposes its outcome as a Future.
// ctx is handed to fn only; the future itself has no cancellation.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return New(func(resolve func(T), reject func(error)) {
		value, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}
		resolve(value)
	})
}

// Resolved creates a Future already settled with value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{value: value, done: make(chan struct{})}
	close(f.done)
	return f
}

// Rejected creates a Future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the future settles and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) resolve(value T) {
	f.once.Do(func() {
		f.value = value
		close(f.done)
	})
}

func (f *Future[T]) reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

func (f *Future[T]) handlePanic() {
	v := recover()
	if v == nil {
		return
	}

	switch e := v.(type) {
	case error:
		f.reject(e)
	default:
		f.reject(fmt.Errorf("%+v", e))
	}
}
