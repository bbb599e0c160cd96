// Package ptr has helpers for the optional fields of options and response types.
package ptr

// To provides a trivial helper to return a pointer to the value passed in.
func To[T any](v T) *T {
	return &v
}

// Or returns the value pointed to, or fallback when the pointer is nil.
func Or[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}
