package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage a project's team",
	}

	cmd.AddCommand(
		newMemberInviteCmd(app),
		newMemberListCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberInviteCmd(app *App) *cobra.Command {
	var project, role string

	cmd := &cobra.Command{
		Use:   "invite EMAIL",
		Short: "Invite a member by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			m, err := app.Members.Invite(ctx, projectID, args[0], domain.MemberRole(role))
			if err != nil {
				return err
			}
			fmt.Printf("Invited %s as %s\n", m.Email, m.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&role, "role", "", "Member role (admin|member|viewer, defaults to member)")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's members",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			members, err := app.Members.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No members invited.")
				return nil
			}

			headers := []string{"EMAIL", "ROLE", "INVITED"}
			rows := make([][]string, 0, len(members))
			for _, m := range members {
				rows = append(rows, []string{
					formatter.Bold(m.Email),
					string(m.Role),
					formatter.HumanDate(m.InvitedAt),
				})
			}
			fmt.Printf("%s\n", formatter.RenderBox("Team", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove EMAIL",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			if err := app.Members.Remove(ctx, projectID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")

	return cmd
}
