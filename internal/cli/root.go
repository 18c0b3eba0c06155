package cli

import (
	"github.com/spf13/cobra"

	"github.com/stonebridgedev/clearview/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Documents service.DocumentService
	Tasks     service.TaskService
	Members   service.MemberService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the timeline TUI require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "clearview" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clearview",
		Short: "Construction project tracker with a day-indexed document log",
	}

	root.AddCommand(
		newProjectCmd(app),
		newDocCmd(app),
		newTaskCmd(app),
		newMemberCmd(app),
		newTimelineCmd(app),
	)

	return root
}
