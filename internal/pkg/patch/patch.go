// Package patch holds helpers for optional request fields.
package patch

import "strings"

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedString returns the trimmed value of an optional text field, "" when absent.
func TrimmedString(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}

func Ptr[T any](v T) *T {
	return &v
}
