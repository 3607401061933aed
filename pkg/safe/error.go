package safe

import "fmt"

// renderFallback is used when a failure value cannot be rendered as text.
const renderFallback = "unknown failure"

// Error is the canonical failure representation carried by failing
// results when no custom Transform is supplied. It keeps the original
// failure value as cause for diagnostics and an optional caller-assigned
// code classifier.
type Error struct {
	message string
	cause   any
	code    string
}

type ErrorOption func(*Error)

func WithCause(cause any) ErrorOption {
	return func(e *Error) {
		e.cause = cause
	}
}

func WithCode(code string) ErrorOption {
	return func(e *Error) {
		e.code = code
	}
}

func NewError(message string, opts ...ErrorOption) *Error {
	e := &Error{message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Cause() any {
	return e.cause
}

func (e *Error) Code() string {
	return e.code
}

// Unwrap exposes the cause to errors.Is/As when the cause is itself an error.
func (e *Error) Unwrap() error {
	if cause, ok := e.cause.(error); ok {
		return cause
	}
	return nil
}

// Transform is a caller-supplied replacement for Normalize. Its output
// is placed into the error slot as-is; the core never inspects it.
type Transform func(v any) error

// Normalize converts an arbitrary failure value into *Error. It is total:
// any input, including nil and typed-nil errors, produces a usable error.
// An input that is already *Error is returned unchanged.
func Normalize(v any) *Error {
	switch f := v.(type) {
	case *Error:
		if f != nil {
			return f
		}
		return NewError(renderFallback)
	case error:
		if IsNil(f) {
			return NewError(renderFallback)
		}
		return NewError(f.Error(), WithCause(f))
	case string:
		return NewError(f)
	case nil:
		return NewError(renderFallback)
	default:
		return NewError(render(v), WithCause(v))
	}
}

func render(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = renderFallback
		}
	}()
	return fmt.Sprintf("%v", v)
}

// normalizeWith applies the first non-nil transform, falling back to
// Normalize when none is given, the transform itself panics, or it
// returns a nil error. A nil error slot would break the exactly-one-of
// invariant, so the wrapper contract outranks the transformer.
func normalizeWith(v any, transforms []Transform) (err error) {
	var transform Transform
	for _, t := range transforms {
		if t != nil {
			transform = t
			break
		}
	}
	if transform == nil {
		return Normalize(v)
	}

	defer func() {
		if recover() != nil {
			err = Normalize(v)
		}
	}()

	if out := transform(v); !IsNil(out) {
		return out
	}
	return Normalize(v)
}
