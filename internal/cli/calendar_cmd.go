package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage working-day rules",
	}

	cmd.AddCommand(
		newCalendarShowCmd(app),
		newCalendarWeekdayCmd(app),
		newCalendarDateCmd(app),
	)

	return cmd
}

func newCalendarShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show BLOCK",
		Short: "Show the calendar rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCalendar(t.Calendar))
			return nil
		},
	}
}

func newCalendarWeekdayCmd(app *App) *cobra.Command {
	var exclude, include bool

	cmd := &cobra.Command{
		Use:   "weekday BLOCK DAY",
		Short: "Exclude or re-include a weekday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := parseWeekday(args[1])
			if err != nil {
				return err
			}
			if exclude == include {
				return fmt.Errorf("pass exactly one of --exclude or --include")
			}

			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				cfg := &s.Model().Calendar
				if cfg.ExcludeWeekdays == nil {
					cfg.ExcludeWeekdays = map[time.Weekday]bool{}
				}
				if exclude {
					cfg.ExcludeWeekdays[wd] = true
					fmt.Printf("Excluded %s from working days\n", wd)
				} else {
					delete(cfg.ExcludeWeekdays, wd)
					fmt.Printf("Re-included %s as a working day\n", wd)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&exclude, "exclude", false, "Mark the weekday non-working")
	cmd.Flags().BoolVar(&include, "include", false, "Mark the weekday working")

	return cmd
}

func newCalendarDateCmd(app *App) *cobra.Command {
	var exclude, include, clear bool

	cmd := &cobra.Command{
		Use:   "date BLOCK DATE",
		Short: "Override the calendar for a single date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[1], err)
			}
			key := domain.FormatDate(day)

			set := 0
			for _, b := range []bool{exclude, include, clear} {
				if b {
					set++
				}
			}
			if set != 1 {
				return fmt.Errorf("pass exactly one of --exclude, --include or --clear")
			}

			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				cfg := &s.Model().Calendar
				if cfg.IncludeDates == nil {
					cfg.IncludeDates = map[string]bool{}
				}
				if cfg.ExcludeDates == nil {
					cfg.ExcludeDates = map[string]bool{}
				}

				switch {
				case exclude:
					cfg.ExcludeDates[key] = true
					delete(cfg.IncludeDates, key)
					fmt.Printf("Excluded %s\n", key)
				case include:
					cfg.IncludeDates[key] = true
					delete(cfg.ExcludeDates, key)
					fmt.Printf("Included %s\n", key)
				case clear:
					delete(cfg.IncludeDates, key)
					delete(cfg.ExcludeDates, key)
					fmt.Printf("Cleared overrides for %s\n", key)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&exclude, "exclude", false, "Mark the date non-working")
	cmd.Flags().BoolVar(&include, "include", false, "Mark the date working")
	cmd.Flags().BoolVar(&clear, "clear", false, "Drop any override for the date")

	return cmd
}

func parseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(s, wd.String()) || strings.EqualFold(s, wd.String()[:3]) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}
