package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectUseCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var id, name, address, client, budget, tags, start, end, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				ID:          id,
				Name:        name,
				Address:     address,
				Client:      client,
				Description: description,
			}
			if p.ID == "" {
				p.ID = "P-" + uuid.New().String()[:8]
			}
			if budget != "" {
				b, err := strconv.ParseFloat(budget, 64)
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", budget, err)
				}
				p.Budget = b
			}
			if tags != "" {
				for _, tag := range strings.Split(tags, ",") {
					if tag = strings.TrimSpace(tag); tag != "" {
						p.Tags = append(p.Tags, tag)
					}
				}
			}
			if start != "" {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = d
			}
			if end != "" {
				d, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = d
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Project ID (generated when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&address, "address", "", "Site address")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&budget, "budget", "", "Budget in dollars")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects, app.Projects.Selected(ctx)))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [ID]",
		Short: "Show project details and team",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			members, err := app.Members.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(p, members))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, address, client, budget, status, description string

	cmd := &cobra.Command{
		Use:   "update [ID]",
		Short: "Update a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("address") {
				p.Address = address
			}
			if cmd.Flags().Changed("client") {
				p.Client = client
			}
			if cmd.Flags().Changed("description") {
				p.Description = description
			}
			if cmd.Flags().Changed("budget") {
				b, err := strconv.ParseFloat(budget, 64)
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", budget, err)
				}
				p.Budget = b
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidProjectStatuses[status] {
					return fmt.Errorf("invalid status %q (planned|active|on_hold|done)", status)
				}
				p.Status = domain.ProjectStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s [%s]\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&address, "address", "", "Site address")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&budget, "budget", "", "Budget in dollars")
	cmd.Flags().StringVar(&status, "status", "", "Project status (planned|active|on_hold|done)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and everything filed under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}

func newProjectUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use ID",
		Short: "Select the project that other commands default to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Select(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Now using project %s\n", projectID)
			return nil
		},
	}
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
