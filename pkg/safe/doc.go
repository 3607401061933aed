// Package safe converts fallible operations into explicit Result[T]
// outcomes instead of letting errors and panics drive control flow.
//
// A Result[T] holds either a value or an error, never both. Wrappers
// produce results from the three common failure sources; combinators
// operate on results without caring where they came from.
//
// Highlights:
// - To/Go/SafeAwait: await a pending asynchronous value (see safe/future)
// - Sync/Call/SafeCall: run a fallible function on the caller's goroutine
// - Cb: bridge a legacy (err, value) callback API
// - Normalize: turn any failure value (error, string, panic payload)
//   into a canonical *Error; a Transform overrides it per wrapper call
// - Or/Map/MapTo: substitute defaults and transform successful values
// - Pipe/SafePipe: run steps strictly in order, stopping at the first failure
// - Format/Parse: lossy one-line text round trip for diagnostics
package safe
