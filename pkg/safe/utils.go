package safe

import "reflect"

// IsNil reports whether i is nil, including a typed-nil pointer boxed in
// an interface. Callback error truthiness and Normalize both rely on it.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
