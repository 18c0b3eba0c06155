package domain

import "time"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrFromPtrWithDefault returns the first non-nil *string value, or the fallback.
func StrFromPtrWithDefault(fallback string, ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// TimeFromPtrWithDefault returns the first non-nil *time.Time value, or the fallback.
func TimeFromPtrWithDefault(fallback time.Time, ptrs ...*time.Time) time.Time {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// StringsFromPtrWithDefault returns the first non-nil *[]string value, or the fallback.
func StringsFromPtrWithDefault(fallback []string, ptrs ...*[]string) []string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
