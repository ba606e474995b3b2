package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceTrimmed treats a nil or blank string as "not provided".
func CoalesceTrimmed(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	if v := strings.TrimSpace(*ptr); v != "" {
		return v
	}
	return fallback
}

// NullableString keeps the current value when ptr is nil and clears it when
// ptr points to a blank string.
func NullableString(ptr *string, current *string) *string {
	if ptr == nil {
		return current
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return nil
	}
	return &v
}
