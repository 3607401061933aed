package safe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stable prefixes of the textual encoding. Compatibility with other
// readers depends on these exact literals.
const (
	okPrefix  = "[OK] data: "
	errPrefix = "[ERR] error: "
)

// Format renders a result as a single diagnostic line. Successful values
// are JSON-encoded; failures keep only the error message, dropping
// cause and code. The encoding is lossy on purpose.
func Format[T any](r Result[T]) string {
	if r.IsSuccess() {
		data, err := json.Marshal(r.Value())
		if err != nil {
			// Format has no failure path; the round-trip law only
			// covers losslessly-encodable payloads.
			return okPrefix + fmt.Sprintf("%v", r.Value())
		}
		return okPrefix + string(data)
	}
	return errPrefix + r.Err().Error()
}

// Parse reconstructs a result from Format's text layout. Malformed input
// is an error of Parse itself, never a failing result: the caller is
// feeding a debugging utility, not routing data flow.
func Parse[T any](text string) (Result[T], error) {
	if rest, ok := strings.CutPrefix(text, okPrefix); ok {
		var value T
		if err := json.Unmarshal([]byte(rest), &value); err != nil {
			return Result[T]{}, fmt.Errorf("parse data payload %q: %w", rest, err)
		}
		return Success(value), nil
	}

	if rest, ok := strings.CutPrefix(text, errPrefix); ok {
		return Fail[T](NewError(rest)), nil
	}

	return Result[T]{}, fmt.Errorf("parse: unrecognized text %q", text)
}
