package cli

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprint bands",
	}

	cmd.AddCommand(
		newSprintAddCmd(app),
		newSprintListCmd(app),
		newSprintRemoveCmd(app),
	)

	return cmd
}

func newSprintAddCmd(app *App) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "add BLOCK",
		Short: "Add a sprint band",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				added, err := s.AddSprint(domain.Sprint{
					Name:  name,
					Start: startDate,
					End:   endDate,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Added sprint %s [%s] %s → %s\n", added.Name, added.ID, start, end)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSprintListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list BLOCK",
		Short: "List sprint bands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if len(t.Sprints) == 0 {
				fmt.Println("No sprints found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSprintList(t.Sprints))
			return nil
		},
	}
}

func newSprintRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BLOCK ID",
		Short: "Remove a sprint band",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveSprintID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.RemoveSprint(id); err != nil {
					return err
				}
				fmt.Printf("Removed sprint %s\n", id)
				return nil
			})
		},
	}
}
