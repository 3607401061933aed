package safe

// Or returns the value of a successful result, or def unchanged otherwise.
func Or[T any](r Result[T], def T) T {
	if r.IsSuccess() {
		return r.Value()
	}
	return def
}

// Map transforms the value of a successful result into a fresh result.
// A failing result is returned as-is: same tuple, same error reference.
// fn is trusted not to panic; a panicking fn is a caller bug.
func Map[T any](r Result[T], fn func(v T) T) Result[T] {
	if r.IsSuccess() {
		return Success(fn(r.Value()))
	}
	return r
}

// MapTo transforms the value of a successful result to a new type. A
// failing result is re-carried with the same error reference (the tuple
// itself must be rebuilt across the type change).
func MapTo[In, Out any](r Result[In], fn func(v In) Out) Result[Out] {
	if r.IsSuccess() {
		return Success(fn(r.Value()))
	}
	return Fail[Out](r.Err())
}
