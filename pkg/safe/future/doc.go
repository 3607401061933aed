// Package future provides the minimal pending-value type awaited by the
// safe wrappers. A Future[T] settles exactly once with a value or an
// error; it satisfies safe.Awaitable[T].
//
// Highlights:
// - New: run an executor with resolve/reject callbacks
// - Go: spawn a fallible func(ctx) (T, error)
// - Resolved/Rejected: pre-settled futures
// - Await/Done: block for, or select on, the settlement
//
// There are deliberately no All/Race/timeout combinators: the library
// wraps pre-existing asynchronous values, it does not orchestrate them.
package future
