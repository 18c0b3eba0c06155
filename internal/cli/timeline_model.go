package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/timeline"
)

// tileChars is the character width of one day tile in the strip.
const tileChars = 12

type timelineKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Today key.Binding
	Quit  key.Binding
}

func defaultTimelineKeys() timelineKeyMap {
	return timelineKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// timelineModel is the bubbletea model for the interactive day strip:
// a horizontal row of day tiles above the day's document list and the
// task gantt.
type timelineModel struct {
	project *domain.Project
	docs    map[string][]*domain.Document
	tasks   []*domain.Task
	dangling map[string][]string

	ctrl   *timeline.Controller
	cursor int
	keys   timelineKeyMap
	width  int
	now    time.Time
}

func newTimelineModel(ctx context.Context, app *App, projectID string, rangeStart time.Time, dayCount int) (timelineModel, error) {
	p, err := app.Projects.GetByID(ctx, projectID)
	if err != nil {
		return timelineModel{}, err
	}
	startKey := calendar.DayKey(rangeStart)
	docs, err := app.Documents.ListForRange(ctx, projectID, startKey, dayCount)
	if err != nil {
		return timelineModel{}, err
	}
	tasks, err := app.Tasks.ListForProject(ctx, projectID)
	if err != nil {
		return timelineModel{}, err
	}
	dangling, err := app.Tasks.Dangling(ctx, projectID)
	if err != nil {
		return timelineModel{}, err
	}

	m := timelineModel{
		project:  p,
		docs:     docs,
		tasks:    tasks,
		dangling: dangling,
		ctrl:     timeline.NewController(rangeStart, dayCount),
		keys:     defaultTimelineKeys(),
		width:    80,
		now:      time.Now(),
	}

	// Open centered on today when it falls inside the range.
	m.ctrl.ScrollToToday(m.now)
	if idx, ok := m.ctrl.TargetIndex(); ok {
		m.cursor = idx
	}
	m.ctrl.Clear()

	return m, nil
}

func (m timelineModel) Init() tea.Cmd {
	return nil
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.cursor < m.ctrl.VisibleDays-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.ctrl.ScrollToToday(m.now)
			if idx, ok := m.ctrl.TargetIndex(); ok {
				m.cursor = idx
			}
			m.ctrl.Clear()
			return m, nil
		}
	}
	return m, nil
}

func (m timelineModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.project.Name) + "\n\n")
	b.WriteString(m.renderStrip() + "\n\n")
	b.WriteString(m.renderCursorDay() + "\n")
	b.WriteString(formatter.FormatGantt(m.ctrl.VisibleStart, m.ctrl.VisibleDays, m.tasks, m.dangling, m.now))
	b.WriteString("\n" + formatter.Dim("←/→ move  t today  q quit"))

	return b.String()
}

// renderStrip draws the visible slice of day tiles with the cursor
// tile centered, the same centering rule the scroll target uses.
func (m timelineModel) renderStrip() string {
	visibleTiles := m.width / tileChars
	if visibleTiles < 1 {
		visibleTiles = 1
	}

	// Left edge in tile units from the centering offset.
	first := timeline.ScrollOffsetFor(m.cursor, tileChars, visibleTiles*tileChars) / tileChars
	if first < 0 {
		first = 0
	}
	if last := m.ctrl.VisibleDays - visibleTiles; first > last {
		first = last
	}
	if first < 0 {
		first = 0
	}

	tiles := make([]string, 0, visibleTiles)
	for i := first; i < first+visibleTiles && i < m.ctrl.VisibleDays; i++ {
		tiles = append(tiles, m.renderTile(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m timelineModel) renderTile(index int) string {
	day := calendar.AddDays(m.ctrl.VisibleStart, index)
	dayKey := calendar.DayKey(day)
	count := len(m.docs[dayKey])

	label := calendar.FormatShort(day)
	body := formatter.Dim("·")
	if count > 0 {
		body = formatter.StyleGreen.Render(fmt.Sprintf("%d docs", count))
	}

	style := lipgloss.NewStyle().
		Width(tileChars - 2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim)
	if index == m.cursor {
		style = style.BorderForeground(formatter.ColorHeader)
		label = formatter.StyleHeader.Render(label)
	}
	if calendar.DaysBetween(day, m.now) == 0 {
		label = formatter.StyleGreen.Render(calendar.FormatShort(day))
	}

	return style.Render(label + "\n" + body)
}

func (m timelineModel) renderCursorDay() string {
	dayKey := calendar.DayKey(calendar.AddDays(m.ctrl.VisibleStart, m.cursor))
	return formatter.FormatDayDocuments(dayKey, m.docs[dayKey])
}
