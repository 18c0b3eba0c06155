package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfDate_Clamped(t *testing.T) {
	start := day(t, "2025-01-01")

	assert.Equal(t, 14, IndexOfDate(start, 30, day(t, "2025-01-15")))
	assert.Equal(t, 0, IndexOfDate(start, 30, day(t, "2024-12-20")), "before the window clamps to 0")
	assert.Equal(t, 29, IndexOfDate(start, 30, day(t, "2025-03-01")), "past the window clamps to last tile")
}

func TestIndexOfDate_TruncatesTargetToMidnight(t *testing.T) {
	start := day(t, "2025-01-01")
	lateEvening := time.Date(2025, 1, 15, 23, 45, 0, 0, time.Local)

	assert.Equal(t, 14, IndexOfDate(start, 30, lateEvening))
}

func TestScrollOffsetFor_CentersTile(t *testing.T) {
	assert.Equal(t, 14*222-450+111, ScrollOffsetFor(14, 222, 900))
	assert.Equal(t, 2769, ScrollOffsetFor(14, 222, 900))
}

func TestScrollOffsetFor_NegativeIsValid(t *testing.T) {
	assert.Equal(t, -450+111, ScrollOffsetFor(0, 222, 900))
}

func TestController_ScrollScenario(t *testing.T) {
	c := NewController(day(t, "2025-01-01"), 30)
	c.ScrollTo(day(t, "2025-01-15"))

	idx, ok := c.TargetIndex()
	require.True(t, ok)
	assert.Equal(t, 14, idx)

	offset, ok := c.Offset(222, 900)
	require.True(t, ok)
	assert.Equal(t, 2769, offset)
}

func TestController_NoTarget(t *testing.T) {
	c := NewController(day(t, "2025-01-01"), 30)

	_, ok := c.Target()
	assert.False(t, ok)
	_, ok = c.Offset(222, 900)
	assert.False(t, ok)
}

func TestController_TodayReusesComputation(t *testing.T) {
	c := NewController(day(t, "2025-01-01"), 30)
	now := time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local)
	c.ScrollToToday(now)

	idx, ok := c.TargetIndex()
	require.True(t, ok)
	assert.Equal(t, 14, idx)
}

func TestController_Clear(t *testing.T) {
	c := NewController(day(t, "2025-01-01"), 30)
	c.ScrollTo(day(t, "2025-01-15"))
	c.Clear()

	_, ok := c.Target()
	assert.False(t, ok)
}
