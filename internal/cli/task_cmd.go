package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage scheduled tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, name, assignee, start, end, dependsOn string
	var percent int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			task := &domain.Task{
				Name:      name,
				Assignee:  assignee,
				Start:     startDate,
				End:       endDate,
				Percent:   percent,
				DependsOn: splitIDList(dependsOn),
			}
			stored, err := app.Tasks.Insert(ctx, projectID, task)
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled task %s [%s]\n", stored.Name, stored.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Responsible crew or person")
	cmd.Flags().StringVar(&start, "start", "", "Start day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End day, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntVar(&percent, "percent", 0, "Completion percentage")
	cmd.Flags().StringVar(&dependsOn, "depends-on", "", "Comma-separated predecessor task IDs")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.ListForProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks scheduled.")
				return nil
			}
			dangling, err := app.Tasks.Dangling(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks, dangling))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var project, name, assignee, start, end, dependsOn string
	var percent int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			patch, err := buildTaskPatch(cmd.Flags(), name, assignee, start, end, dependsOn, percent)
			if err != nil {
				return err
			}

			updated, err := app.Tasks.Update(ctx, projectID, args[0], patch)
			if err != nil {
				return err
			}

			fmt.Printf("Updated task %s [%s]\n", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Responsible crew or person")
	cmd.Flags().StringVar(&start, "start", "", "Start day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End day, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntVar(&percent, "percent", 0, "Completion percentage")
	cmd.Flags().StringVar(&dependsOn, "depends-on", "", "Comma-separated predecessor task IDs (empty clears)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task (dependents keep their references)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			if err := app.Tasks.Remove(ctx, projectID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")

	return cmd
}

// buildTaskPatch translates changed flags into a sparse patch; unset
// flags leave their fields nil so the graph keeps current values.
func buildTaskPatch(flags *pflag.FlagSet, name, assignee, start, end, dependsOn string, percent int) (domain.TaskPatch, error) {
	var patch domain.TaskPatch
	if flags.Changed("name") {
		patch.Name = &name
	}
	if flags.Changed("assignee") {
		patch.Assignee = &assignee
	}
	if flags.Changed("start") {
		d, err := time.Parse("2006-01-02", start)
		if err != nil {
			return patch, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		patch.Start = &d
	}
	if flags.Changed("end") {
		d, err := time.Parse("2006-01-02", end)
		if err != nil {
			return patch, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		patch.End = &d
	}
	if flags.Changed("percent") {
		patch.Percent = &percent
	}
	if flags.Changed("depends-on") {
		deps := splitIDList(dependsOn)
		patch.DependsOn = &deps
	}
	return patch, nil
}

// splitIDList parses a comma-separated ID list, never returning nil.
func splitIDList(s string) []string {
	out := []string{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
