package cli

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage stage bars",
	}

	cmd.AddCommand(
		newStageAddCmd(app),
		newStageListCmd(app),
		newStageUpdateCmd(app),
		newStageMoveCmd(app),
		newStageResizeCmd(app),
		newStageRemoveCmd(app),
	)

	return cmd
}

func newStageAddCmd(app *App) *cobra.Command {
	var name, start, color, assignee string
	var duration int

	cmd := &cobra.Command{
		Use:   "add BLOCK PROJECT",
		Short: "Add a stage to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				projectID, err := resolveProjectID(s.Model(), args[1])
				if err != nil {
					return err
				}
				stage := domain.Stage{
					Name:     name,
					Start:    startDate,
					Duration: duration,
					Color:    color,
				}
				if assignee != "" {
					stage.Assignee = &domain.Assignee{Name: assignee}
				}
				added, err := s.AddStage(projectID, stage)
				if err != nil {
					return err
				}
				fmt.Printf("Added stage %s [%s] %s for %d days\n",
					added.Name, added.ID, start, added.Duration)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Stage name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 1, "Duration in days")
	cmd.Flags().StringVar(&color, "color", "", "Bar color (6-digit hex)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Stage assignee")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newStageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list BLOCK",
		Short: "List stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			total := 0
			for _, p := range t.Projects {
				total += len(p.Stages)
			}
			if total == 0 {
				fmt.Println("No stages found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatStageList(t))
			return nil
		},
	}
}

func newStageUpdateCmd(app *App) *cobra.Command {
	var name, start, color string
	var duration int

	cmd := &cobra.Command{
		Use:   "update BLOCK ID",
		Short: "Update a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveStageID(s.Model(), args[1])
				if err != nil {
					return err
				}
				_, st := s.Model().FindStage(id)

				next := *st
				if cmd.Flags().Changed("name") {
					next.Name = name
				}
				if cmd.Flags().Changed("start") {
					startDate, err := domain.ParseDate(start)
					if err != nil {
						return fmt.Errorf("invalid start date %q: %w", start, err)
					}
					next.Start = startDate
				}
				if cmd.Flags().Changed("duration") {
					next.Duration = duration
				}
				if cmd.Flags().Changed("color") {
					next.Color = color
				}

				if err := s.UpdateStage(id, next.Name, next.Start, next.Duration, next.Color); err != nil {
					return err
				}
				fmt.Printf("Updated stage %s\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Stage name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in days")
	cmd.Flags().StringVar(&color, "color", "", "Bar color (6-digit hex)")

	return cmd
}

func newStageMoveCmd(app *App) *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:   "move BLOCK ID",
		Short: "Drag a stage left or right by whole cells",
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
			id, err := resolveStageID(t, args[1])
			if err != nil {
				return err
			}

			stage, err := app.Timelines.MoveStage(ctx, blockID, id, by)
			if err != nil {
				return err
			}
			fmt.Printf("Moved stage %s to %s\n", stage.Name, domain.FormatDate(stage.Start))
			return nil
		},
	}

	cmd.Flags().IntVar(&by, "by", 0, "Cells to move (negative moves left)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func newStageResizeCmd(app *App) *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "resize BLOCK ID",
		Short: "Resize a stage to a new duration",
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
			id, err := resolveStageID(t, args[1])
			if err != nil {
				return err
			}

			stage, err := app.Timelines.ResizeStage(ctx, blockID, id, to)
			if err != nil {
				return err
			}
			fmt.Printf("Resized stage %s to %d days\n", stage.Name, stage.Duration)
			return nil
		},
	}

	cmd.Flags().IntVar(&to, "to", 0, "New duration in days")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newStageRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BLOCK ID",
		Short: "Remove a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveStageID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.RemoveStage(id); err != nil {
					return err
				}
				fmt.Printf("Removed stage %s\n", id)
				return nil
			})
		},
	}
}
