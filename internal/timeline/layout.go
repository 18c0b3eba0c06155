// Package timeline maps the task graph and the visible day range onto
// a continuous pixel coordinate grid. Everything here is purely
// geometric and deterministic for identical inputs; nothing knows
// about persistence, and nothing clamps for display (callers clip).
package timeline

import (
	"time"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
)

// Grid constants from the reference renderer.
const (
	// DefaultColumnWidth is the gantt pixel width of one day column.
	DefaultColumnWidth = 28

	// TileWidth is the day-strip tile width; TileStride adds the gap
	// between adjacent tiles.
	TileWidth  = 220
	TileStride = 222

	// DefaultRowHeight and BarHeight size one task row and its bar.
	DefaultRowHeight = 36
	BarHeight        = 18

	verticalPadding = 8
)

// DayCount returns the number of day columns needed to cover the
// inclusive range [rangeStart, rangeEnd], never less than one.
func DayCount(rangeStart, rangeEnd time.Time) int {
	n := calendar.DaysBetween(rangeStart, rangeEnd) + 1
	if n < 1 {
		return 1
	}
	return n
}

// Layout computes bar and tile geometry for one visible range.
type Layout struct {
	RangeStart  time.Time
	ColumnWidth int
}

// NewLayout creates a layout anchored at rangeStart. A non-positive
// columnWidth falls back to DefaultColumnWidth.
func NewLayout(rangeStart time.Time, columnWidth int) Layout {
	if columnWidth <= 0 {
		columnWidth = DefaultColumnWidth
	}
	return Layout{RangeStart: rangeStart, ColumnWidth: columnWidth}
}

// OffsetOf returns the pixel offset of date's column relative to the
// range start. The result may be negative or beyond the grid width
// when date falls outside the range.
func (l Layout) OffsetOf(date time.Time) int {
	return calendar.DaysBetween(l.RangeStart, date) * l.ColumnWidth
}

// WidthOf returns the pixel width of a bar spanning the inclusive day
// range [start, end], floored to one column so that same-day and
// inverted ranges still render.
func (l Layout) WidthOf(start, end time.Time) int {
	w := (calendar.DaysBetween(start, end) + 1) * l.ColumnWidth
	if w < l.ColumnWidth {
		return l.ColumnWidth
	}
	return w
}

// GridWidth returns the total pixel width of a grid with the given
// number of day columns.
func (l Layout) GridWidth(dayCount int) int {
	return dayCount * l.ColumnWidth
}

// RowTop returns the vertical pixel offset of the bar in the given
// row. Rows follow the task graph's listing order; no overlap packing
// is performed, concurrent tasks simply stack one row each.
func RowTop(index, rowHeight int) int {
	return index*rowHeight + verticalPadding
}

// Bar is the renderable geometry of one task.
type Bar struct {
	Task   *domain.Task
	Left   int
	Top    int
	Width  int
	Height int
}

// Bars computes the geometry of every task bar, one row per task in
// the order given.
func (l Layout) Bars(tasks []*domain.Task, rowHeight int) []Bar {
	bars := make([]Bar, len(tasks))
	for i, t := range tasks {
		bars[i] = Bar{
			Task:   t,
			Left:   l.OffsetOf(t.Start),
			Top:    RowTop(i, rowHeight),
			Width:  l.WidthOf(t.Start, t.End),
			Height: BarHeight,
		}
	}
	return bars
}
