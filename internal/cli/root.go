package cli

import (
	"github.com/Chilos/project-gantt/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timelines service.TimelineService
	Imports   service.ImportService

	// IsInteractive reports whether stdin is attached to a terminal;
	// wizard and TUI entry points refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gantt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gantt",
		Short: "Visual project timeline editor",
	}

	root.AddCommand(
		newTimelineCmd(app),
		newProjectCmd(app),
		newStageCmd(app),
		newMilestoneCmd(app),
		newSprintCmd(app),
		newCalendarCmd(app),
		newDecodeCmd(app),
		newEncodeCmd(app),
		newImportCmd(app),
		newViewCmd(app),
	)

	return root
}
