package safe

import "time"

// Awaitable is a pre-existing pending asynchronous value: anything that
// blocks until settled and reports a value or an error. *future.Future[T]
// satisfies it, as does any promise type with the same method shape.
type Awaitable[T any] interface {
	// Await blocks until the value settles
	Await() (T, error)
}

type ValueProvider[T any] interface {
	// Value returns the successful outcome value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
