// Package calendar holds the pure date arithmetic the rest of the
// engine is built on. Every date-bearing field elsewhere is either a
// canonical YYYY-MM-DD day key or a time.Time that passes through
// these functions, so day-boundary semantics stay consistent.
package calendar

import (
	"math"
	"strings"
	"time"
)

// DayLayout is the canonical day-key format.
const DayLayout = "2006-01-02"

// keyLayouts are the accepted shapes for free-form date input, tried in
// order by Key.
var keyLayouts = []string{
	DayLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays adds n calendar days (n may be negative), handling month and
// year rollover.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the signed day distance from a to b after
// truncating both to midnight. DaysBetween(a, b) == -DaysBetween(b, a)
// and DaysBetween(a, a) == 0. Rounding absorbs DST-shortened days.
func DaysBetween(a, b time.Time) int {
	d := StartOfDay(b).Sub(StartOfDay(a))
	return int(math.Round(d.Hours() / 24))
}

// DayKey formats t as the canonical YYYY-MM-DD key. The zero time has
// no key and yields the empty string.
func DayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DayLayout)
}

// Key normalizes a free-form date string to a canonical day key.
// Unparseable input yields the empty string rather than an error;
// callers must treat "" as "no key" and skip indexing.
func Key(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range keyLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DayKey(t)
		}
	}
	return ""
}

// ParseDay parses a canonical day key back into local midnight of that
// day.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, key, time.Local)
}

// OffsetKey returns the day key n days after key, or "" if key is not
// a valid day key.
func OffsetKey(key string, n int) string {
	t, err := ParseDay(key)
	if err != nil {
		return ""
	}
	return DayKey(AddDays(t, n))
}

// FormatShort renders a display-only month+day label such as "Mar 10".
// Never use it as an index key.
func FormatShort(t time.Time) string {
	return t.Format("Jan 2")
}
