package cli

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestone markers",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneMoveCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var name, date, color string

	cmd := &cobra.Command{
		Use:   "add BLOCK PROJECT",
		Short: "Add a milestone to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				projectID, err := resolveProjectID(s.Model(), args[1])
				if err != nil {
					return err
				}
				added, err := s.AddMilestone(projectID, domain.Milestone{
					Name:  name,
					Date:  day,
					Color: color,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Added milestone %s [%s] on %s\n", added.Name, added.ID, date)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&color, "color", "", "Marker color (6-digit hex)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list BLOCK",
		Short: "List milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			total := 0
			for _, p := range t.Projects {
				total += len(p.Milestones)
			}
			if total == 0 {
				fmt.Println("No milestones found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMilestoneList(t))
			return nil
		},
	}
}

func newMilestoneMoveCmd(app *App) *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:   "move BLOCK ID",
		Short: "Drag a milestone left or right by whole cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			blockID, err := resolveBlockID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Timelines.Load(ctx, blockID)
			if err != nil {
				return err
			}
			id, err := resolveMilestoneID(t, args[1])
			if err != nil {
				return err
			}

			m, err := app.Timelines.MoveMilestone(ctx, blockID, id, by)
			if err != nil {
				return err
			}
			fmt.Printf("Moved milestone %s to %s\n", m.Name, domain.FormatDate(m.Date))
			return nil
		},
	}

	cmd.Flags().IntVar(&by, "by", 0, "Cells to move (negative moves left)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BLOCK ID",
		Short: "Remove a milestone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveMilestoneID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.RemoveMilestone(id); err != nil {
					return err
				}
				fmt.Printf("Removed milestone %s\n", id)
				return nil
			})
		},
	}
}
