package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/timeline"
)

func newTimelineCmd(app *App) *cobra.Command {
	var project, from string
	var days int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the project gantt and day strip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			rangeStart, dayCount, err := resolveRange(ctx, app, projectID, from, days)
			if err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive timeline requires a terminal")
				}
				model, err := newTimelineModel(ctx, app, projectID, rangeStart, dayCount)
				if err != nil {
					return err
				}
				_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			tasks, err := app.Tasks.ListForProject(ctx, projectID)
			if err != nil {
				return err
			}
			dangling, err := app.Tasks.Dangling(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header(fmt.Sprintf("Timeline %s", projectID)))
			fmt.Printf("%s", formatter.FormatGantt(rangeStart, dayCount, tasks, dangling, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&from, "from", "", "Range start day (YYYY-MM-DD, defaults to a week ago)")
	cmd.Flags().IntVar(&days, "days", 0, "Number of days (defaults to the project span)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive day strip")

	return cmd
}

// resolveRange derives the visible window: explicit flags win, then
// the project's own span, then a default month starting a week back.
func resolveRange(ctx context.Context, app *App, projectID, from string, days int) (time.Time, int, error) {
	var rangeStart time.Time
	if from != "" {
		day, err := calendar.ParseDay(from)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("invalid range start %q: %w", from, err)
		}
		rangeStart = day
	}

	p, err := app.Projects.GetByID(ctx, projectID)
	if err != nil {
		return time.Time{}, 0, err
	}

	if rangeStart.IsZero() {
		if !p.StartDate.IsZero() {
			rangeStart = calendar.StartOfDay(p.StartDate)
		} else {
			rangeStart = calendar.AddDays(calendar.StartOfDay(time.Now()), -7)
		}
	}
	if days <= 0 {
		if !p.EndDate.IsZero() {
			days = timeline.DayCount(rangeStart, calendar.StartOfDay(p.EndDate))
		} else {
			days = 30
		}
	}
	return rangeStart, days, nil
}
