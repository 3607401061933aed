package safe

import "sync"

// To awaits a pending asynchronous value and converts its settlement into
// a Result. Fulfillment values pass through untouched; rejections are
// normalized (or handed to the first transform, when given). To never
// panics past its own boundary.
func To[T any](pending Awaitable[T], transforms ...Transform) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[T](normalizeWith(v, transforms))
		}
	}()

	value, err := pending.Await()
	if err != nil {
		return Fail[T](normalizeWith(err, transforms))
	}
	return Success(value)
}

// Go is an alias of To.
func Go[T any](pending Awaitable[T], transforms ...Transform) Result[T] {
	return To(pending, transforms...)
}

// SafeAwait is an alias of To.
func SafeAwait[T any](pending Awaitable[T], transforms ...Transform) Result[T] {
	return To(pending, transforms...)
}

// Sync runs a fallible function on the caller's goroutine and converts
// its outcome into a Result. A returned error and a panic value are both
// captured and normalized; neither escapes.
func Sync[T any](fn func() (T, error), transforms ...Transform) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[T](normalizeWith(v, transforms))
		}
	}()

	value, err := fn()
	if err != nil {
		return Fail[T](normalizeWith(err, transforms))
	}
	return Success(value)
}

// Call is an alias of Sync.
func Call[T any](fn func() (T, error), transforms ...Transform) Result[T] {
	return Sync(fn, transforms...)
}

// SafeCall is an alias of Sync.
func SafeCall[T any](fn func() (T, error), transforms ...Transform) Result[T] {
	return Sync(fn, transforms...)
}

// Cb bridges a legacy (err, value) callback API into a Result. The
// adapter receives a done callback; the first invocation settles the
// outcome and later invocations are ignored. A nil err (typed-nil
// included) means success, anything else means failure. A panic out of
// the adapter before settlement is captured and normalized. Cb blocks
// until the outcome settles, however the adapter delivers it.
func Cb[T any](adapter func(done func(err error, value T)), transforms ...Transform) Result[T] {
	settled := make(chan Result[T], 1)
	var once sync.Once

	done := func(err error, value T) {
		once.Do(func() {
			if IsNil(err) {
				settled <- Success(value)
			} else {
				settled <- Fail[T](normalizeWith(err, transforms))
			}
		})
	}

	func() {
		defer func() {
			if v := recover(); v != nil {
				once.Do(func() {
					settled <- Fail[T](normalizeWith(v, transforms))
				})
			}
		}()
		adapter(done)
	}()

	return <-settled
}
