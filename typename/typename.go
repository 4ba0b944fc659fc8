// Package typename resolves the runtime type name of a value.
package typename

import "reflect"

// Of returns the type name with its package qualifier, e.g. "json.Value" or
// "[]int". A nil interface has no type and yields "<nil>".
func Of(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Short returns the name without the package qualifier, e.g. "Value" for
// "json.Value". Composite types that embed a qualified element name keep
// only the final segment, matching a naive split on the last dot.
func Short(v any) string {
	full := Of(v)
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == '.' {
			return full[i+1:]
		}
	}
	return full
}
