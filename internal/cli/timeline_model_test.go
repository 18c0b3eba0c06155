package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/testutil"
)

func timelineFixture(t *testing.T) (*App, string, time.Time) {
	t.Helper()
	app := newTestApp(t)
	ctx := context.Background()

	p := testutil.NewTestProject("East Campus")
	require.NoError(t, app.Projects.Create(ctx, p))

	rangeStart := calendar.AddDays(calendar.StartOfDay(time.Now()), -7)
	_, err := app.Documents.Append(ctx, p.ID, calendar.DayKey(time.Now()), &domain.Document{
		Kind:  domain.KindOther,
		Title: "daily note",
	})
	require.NoError(t, err)

	return app, p.ID, rangeStart
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTimelineModelOpensOnToday(t *testing.T) {
	app, projectID, rangeStart := timelineFixture(t)

	m, err := newTimelineModel(context.Background(), app, projectID, rangeStart, 30)
	require.NoError(t, err)
	assert.Equal(t, 7, m.cursor, "today sits seven tiles into the range")
}

func TestTimelineModelCursorMovement(t *testing.T) {
	app, projectID, rangeStart := timelineFixture(t)

	m, err := newTimelineModel(context.Background(), app, projectID, rangeStart, 30)
	require.NoError(t, err)

	updated, _ := m.Update(keyMsg("l"))
	m = updated.(timelineModel)
	assert.Equal(t, 8, m.cursor)

	updated, _ = m.Update(keyMsg("h"))
	m = updated.(timelineModel)
	assert.Equal(t, 7, m.cursor)

	// Left edge clamps.
	for i := 0; i < 20; i++ {
		updated, _ = m.Update(keyMsg("h"))
		m = updated.(timelineModel)
	}
	assert.Equal(t, 0, m.cursor)

	// Right edge clamps at the last day.
	for i := 0; i < 60; i++ {
		updated, _ = m.Update(keyMsg("l"))
		m = updated.(timelineModel)
	}
	assert.Equal(t, 29, m.cursor)

	updated, _ = m.Update(keyMsg("t"))
	m = updated.(timelineModel)
	assert.Equal(t, 7, m.cursor, "t jumps back to today")
}

func TestTimelineModelQuit(t *testing.T) {
	app, projectID, rangeStart := timelineFixture(t)

	m, err := newTimelineModel(context.Background(), app, projectID, rangeStart, 30)
	require.NoError(t, err)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTimelineModelView(t *testing.T) {
	app, projectID, rangeStart := timelineFixture(t)

	m, err := newTimelineModel(context.Background(), app, projectID, rangeStart, 30)
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(timelineModel)

	view := m.View()
	assert.Contains(t, view, "EAST CAMPUS")
	assert.Contains(t, view, "daily note", "today's documents show under the strip")
	assert.Contains(t, view, calendar.DayKey(time.Now()))
}
