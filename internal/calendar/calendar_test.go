package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := ParseDay(key)
	require.NoError(t, err)
	return d
}

func TestStartOfDay_TruncatesToMidnight(t *testing.T) {
	late := time.Date(2025, 3, 10, 23, 59, 58, 123, time.Local)
	got := StartOfDay(late)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), got)
}

func TestDaysBetween_SameDayIsZero(t *testing.T) {
	a := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	b := time.Date(2025, 3, 10, 22, 30, 0, 0, time.Local)

	assert.Equal(t, 0, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetween_Antisymmetric(t *testing.T) {
	a := mustDay(t, "2025-01-01")
	b := mustDay(t, "2025-01-10")

	assert.Equal(t, 9, DaysBetween(a, b))
	assert.Equal(t, -9, DaysBetween(b, a))
}

func TestDaysBetween_RoundTripsAddDays(t *testing.T) {
	a := mustDay(t, "2025-02-15")
	for _, n := range []int{-400, -31, -1, 0, 1, 28, 365} {
		assert.Equal(t, n, DaysBetween(a, AddDays(a, n)), "n=%d", n)
	}
}

func TestAddDays_MonthAndYearRollover(t *testing.T) {
	assert.Equal(t, "2025-03-01", DayKey(AddDays(mustDay(t, "2025-02-27"), 2)))
	assert.Equal(t, "2026-01-01", DayKey(AddDays(mustDay(t, "2025-12-31"), 1)))
	assert.Equal(t, "2024-12-30", DayKey(AddDays(mustDay(t, "2025-01-01"), -2)))
}

func TestDayKey_ZeroTimeHasNoKey(t *testing.T) {
	assert.Equal(t, "", DayKey(time.Time{}))
}

func TestKey_RoundTrips(t *testing.T) {
	key := Key("2025-03-10")
	require.Equal(t, "2025-03-10", key)

	d, err := ParseDay(key)
	require.NoError(t, err)
	assert.Equal(t, key, DayKey(d))
}

func TestKey_AcceptsTimestamps(t *testing.T) {
	assert.Equal(t, "2025-03-10", Key("2025-03-10T14:30:00"))
	assert.Equal(t, "2025-03-10", Key("2025-03-10 14:30:00"))
}

func TestKey_InvalidInputYieldsEmpty(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025-13-40", "10/03/2025"} {
		assert.Equal(t, "", Key(s), "input %q", s)
	}
}

func TestOffsetKey(t *testing.T) {
	assert.Equal(t, "2025-03-12", OffsetKey("2025-03-10", 2))
	assert.Equal(t, "2025-02-28", OffsetKey("2025-03-02", -2))
	assert.Equal(t, "", OffsetKey("garbage", 2))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "Mar 10", FormatShort(mustDay(t, "2025-03-10")))
}
