package repository

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses a stored YYYY-MM-DD value; empty or malformed
// values come back as the zero time.
func parseDate(s string) time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// dateToString formats a date for SQLite storage. The zero time is
// stored as the empty string.
func dateToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// tagsToString joins a tag set into a single stored column value.
func tagsToString(tags []string) string {
	return strings.Join(tags, ",")
}

// tagsFromString splits a stored tag column back into a tag set.
func tagsFromString(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
