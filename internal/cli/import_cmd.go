package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var blockID string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a timeline from a YAML or JSON definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportTimeline(context.Background(), args[0], blockID)
			if err != nil {
				return err
			}

			fmt.Printf("Imported timeline into block %s — %d projects, %d stages, %d milestones, %d sprints\n",
				result.BlockID, result.ProjectCount, result.StageCount,
				result.MilestoneCount, result.SprintCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&blockID, "block", "", "Target block ID (generated when empty)")

	return cmd
}
