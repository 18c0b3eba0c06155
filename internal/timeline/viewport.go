package timeline

import (
	"time"

	"github.com/stonebridgedev/clearview/internal/calendar"
)

// IndexOfDate returns target's tile index inside a window of dayCount
// days starting at rangeStart, clamped to [0, dayCount-1].
func IndexOfDate(rangeStart time.Time, dayCount int, target time.Time) int {
	idx := calendar.DaysBetween(rangeStart, calendar.StartOfDay(target))
	if idx < 0 {
		return 0
	}
	if idx > dayCount-1 {
		return dayCount - 1
	}
	return idx
}

// ScrollOffsetFor returns the scroll position that centers the tile at
// index in the viewport. Negative results are valid; the rendering
// layer clamps to the scrollable area's actual bounds.
func ScrollOffsetFor(index, tileWidth, viewportWidth int) int {
	return index*tileWidth - viewportWidth/2 + tileWidth/2
}

// Controller owns the visible date window and the pending
// scroll-to-date intent. Changing the target is the only mutation it
// performs; it never touches documents or tasks.
type Controller struct {
	VisibleStart time.Time
	VisibleDays  int

	scrollTarget *time.Time
}

// NewController creates a controller over a window of visibleDays days
// starting at visibleStart.
func NewController(visibleStart time.Time, visibleDays int) *Controller {
	return &Controller{
		VisibleStart: visibleStart,
		VisibleDays:  visibleDays,
	}
}

// ScrollTo records target as the pending scroll intent.
func (c *Controller) ScrollTo(target time.Time) {
	t := target
	c.scrollTarget = &t
}

// ScrollToToday records now as the pending scroll intent.
func (c *Controller) ScrollToToday(now time.Time) {
	c.ScrollTo(now)
}

// Clear drops the pending scroll intent.
func (c *Controller) Clear() {
	c.scrollTarget = nil
}

// Target returns the pending scroll intent, if any.
func (c *Controller) Target() (time.Time, bool) {
	if c.scrollTarget == nil {
		return time.Time{}, false
	}
	return *c.scrollTarget, true
}

// TargetIndex returns the clamped tile index of the pending scroll
// intent.
func (c *Controller) TargetIndex() (int, bool) {
	target, ok := c.Target()
	if !ok {
		return 0, false
	}
	return IndexOfDate(c.VisibleStart, c.VisibleDays, target), true
}

// Offset translates the pending scroll intent into a viewport-relative
// scroll position.
func (c *Controller) Offset(tileWidth, viewportWidth int) (int, bool) {
	idx, ok := c.TargetIndex()
	if !ok {
		return 0, false
	}
	return ScrollOffsetFor(idx, tileWidth, viewportWidth), true
}
