package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Manage timeline blocks",
	}

	cmd.AddCommand(
		newTimelineCreateCmd(app),
		newTimelineListCmd(app),
		newTimelineShowCmd(app),
		newTimelineChartCmd(app),
		newTimelineWindowCmd(app),
		newTimelineSetCmd(app),
		newTimelineRemoveCmd(app),
	)

	return cmd
}

func newTimelineCreateCmd(app *App) *cobra.Command {
	var blockID string
	var interactive bool

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"new"},
		Short:   "Create a new timeline block",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				return runCreateWizard(ctx, app, blockID)
			}

			t, err := app.Timelines.Create(ctx, blockID)
			if err != nil {
				return err
			}
			fmt.Printf("Created timeline %s → %s\n",
				domain.FormatDate(t.StartDate), domain.FormatDate(t.EndDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&blockID, "block", "", "Block ID (generated when empty)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the creation wizard")

	return cmd
}

func newTimelineListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List timeline blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := app.Timelines.List(context.Background())
			if err != nil {
				return err
			}
			if len(blocks) == 0 {
				fmt.Println("No timelines found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatBlockList(blocks))
			return nil
		},
	}
}

func newTimelineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show BLOCK",
		Short: "Show timeline settings and entities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", formatter.FormatTimelineSummary(t))
			if len(t.Projects) > 0 {
				fmt.Printf("%s\n\n", formatter.FormatProjectList(t.Projects))
			}
			if len(t.Sprints) > 0 {
				fmt.Printf("%s\n\n", formatter.FormatSprintList(t.Sprints))
			}
			fmt.Printf("%s\n", formatter.FormatCalendar(t.Calendar))
			return nil
		},
	}
}

func newTimelineChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chart BLOCK",
		Short: "Render the timeline as a text chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.RenderGantt(t, time.Now()))
			return nil
		},
	}
}

func newTimelineWindowCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "window BLOCK",
		Short: "Move the visible date window",
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
				if err := s.SetWindow(startDate, endDate); err != nil {
					return err
				}
				fmt.Printf("Window set to %s → %s\n", start, end)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Window end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTimelineSetCmd(app *App) *cobra.Command {
	var scale, weekStart string
	var todayLine bool

	cmd := &cobra.Command{
		Use:   "set BLOCK",
		Short: "Change axis settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				t := s.Model()

				if cmd.Flags().Changed("scale") {
					if !domain.ValidTimeScales[scale] {
						return fmt.Errorf("invalid scale %q (day|week)", scale)
					}
					t.TimeScale = domain.TimeScale(scale)
				}
				if cmd.Flags().Changed("week-start") {
					switch weekStart {
					case "sunday":
						t.WeekStartsOn = time.Sunday
					case "monday":
						t.WeekStartsOn = time.Monday
					default:
						return fmt.Errorf("invalid week start %q (sunday|monday)", weekStart)
					}
				}
				if cmd.Flags().Changed("today-line") {
					t.ShowTodayLine = todayLine
				}

				fmt.Printf("%s\n", formatter.FormatTimelineSummary(t))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scale, "scale", "", "Axis granularity (day|week)")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week (sunday|monday)")
	cmd.Flags().BoolVar(&todayLine, "today-line", true, "Show the today marker")

	return cmd
}

func newTimelineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BLOCK",
		Short: "Remove a timeline block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			blockID, err := resolveBlockID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Timelines.Remove(ctx, blockID); err != nil {
				return err
			}
			fmt.Printf("Removed timeline %s\n", blockID)
			return nil
		},
	}
}
