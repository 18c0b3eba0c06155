package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/timeline"
)

// GanttCellWidth is the character width of one day column in the
// terminal gantt.
const GanttCellWidth = 2

// FormatGantt renders the task bars of a project on a character grid,
// one row per task in graph order. Bars outside the visible range clip
// at the grid edges. Tasks whose dependencies point at removed tasks
// get a warning marker after their name.
func FormatGantt(rangeStart time.Time, dayCount int, tasks []*domain.Task, dangling map[string][]string, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks scheduled.")
	}
	if dayCount < 1 {
		dayCount = 1
	}

	layout := timeline.NewLayout(rangeStart, GanttCellWidth)
	gridWidth := layout.GridWidth(dayCount)
	todayCol := layout.OffsetOf(calendar.StartOfDay(now))

	nameWidth := 0
	for _, t := range tasks {
		if w := lipgloss.Width(t.Name); w > nameWidth {
			nameWidth = w
		}
	}
	nameWidth += 2 // room for the dangling marker

	var b strings.Builder
	b.WriteString(ganttHeader(layout, dayCount, nameWidth))

	for _, bar := range layout.Bars(tasks, 1) {
		t := bar.Task
		name := t.Name
		if len(dangling[t.ID]) > 0 {
			name += " " + StyleRed.Render("!")
		}
		b.WriteString(padRight(name, nameWidth))
		b.WriteString(ganttRow(bar, gridWidth, todayCol))
		b.WriteString("  " + RenderProgress(t.Percent, 10))
		b.WriteString("\n")
	}

	return b.String()
}

// ganttHeader renders date ticks above the grid, one every seven days.
func ganttHeader(layout timeline.Layout, dayCount, nameWidth int) string {
	row := make([]rune, layout.GridWidth(dayCount))
	for i := range row {
		row[i] = ' '
	}
	for day := 0; day < dayCount; day += 7 {
		label := calendar.FormatShort(calendar.AddDays(layout.RangeStart, day))
		col := day * layout.ColumnWidth
		for i, r := range label {
			if col+i < len(row) {
				row[col+i] = r
			}
		}
	}
	return strings.Repeat(" ", nameWidth) + Dim(string(row)) + "\n"
}

// ganttRow renders one task bar clipped to the grid, with the done
// portion filled and the today column marked on empty cells.
func ganttRow(bar timeline.Bar, gridWidth, todayCol int) string {
	left := bar.Left
	right := bar.Left + bar.Width
	if left < 0 {
		left = 0
	}
	if right > gridWidth {
		right = gridWidth
	}

	filledEnd := left
	if right > left {
		filledEnd = left + (right-left)*clampPct(bar.Task.Percent)/100
	}

	var b strings.Builder
	for col := 0; col < gridWidth; col++ {
		switch {
		case col >= left && col < filledEnd:
			b.WriteString(StyleGreen.Render(filledBlock))
		case col >= left && col < right:
			b.WriteString(StyleBlue.Render(emptyBlock))
		case col == todayCol:
			b.WriteString(StyleHeader.Render("│"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func padRight(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad < 0 {
		pad = 0
	}
	return s + strings.Repeat(" ", pad)
}

// FormatTaskList renders tasks as a table with schedule and progress.
func FormatTaskList(tasks []*domain.Task, dangling map[string][]string) string {
	headers := []string{"ID", "NAME", "ASSIGNEE", "START", "END", "PROGRESS", "DEPENDS ON"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		deps := strings.Join(t.DependsOn, ", ")
		if missing := dangling[t.ID]; len(missing) > 0 {
			deps += " " + StyleRed.Render(fmt.Sprintf("(missing: %s)", strings.Join(missing, ", ")))
		}
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			Bold(t.Name),
			StyleFg.Render(t.Assignee),
			StyleFg.Render(calendar.DayKey(t.Start)),
			StyleFg.Render(calendar.DayKey(t.End)),
			RenderProgress(t.Percent, 10),
			StyleFg.Render(deps),
		})
	}

	return RenderBox("Tasks", RenderTable(headers, rows))
}
