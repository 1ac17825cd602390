package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// ganttHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func ganttHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// runCreateWizard walks the user through creating a timeline block.
func runCreateWizard(ctx context.Context, app *App, blockID string) error {
	today := time.Now()
	start := domain.FormatDate(today)
	end := domain.FormatDate(today.AddDate(0, 1, 0))
	scale := string(domain.ScaleDay)
	weekStart := "monday"
	todayLine := true
	excludeWeekends := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Window start").
				Description("First visible day (YYYY-MM-DD)").
				Validate(validateDate).
				Value(&start),
			huh.NewInput().
				Title("Window end").
				Description("Last visible day (YYYY-MM-DD)").
				Validate(validateDate).
				Value(&end),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Axis granularity").
				Options(
					huh.NewOption("Day", string(domain.ScaleDay)),
					huh.NewOption("Week", string(domain.ScaleWeek)),
				).
				Value(&scale),
			huh.NewSelect[string]().
				Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).
				Value(&weekStart),
			huh.NewConfirm().
				Title("Exclude weekends?").
				Value(&excludeWeekends),
			huh.NewConfirm().
				Title("Show today marker?").
				Value(&todayLine),
		),
	).WithTheme(ganttHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startDate, err := domain.ParseDate(start)
	if err != nil {
		return err
	}
	endDate, err := domain.ParseDate(end)
	if err != nil {
		return err
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("window ends (%s) before it starts (%s)", end, start)
	}

	if blockID == "" {
		blockID = uuid.New().String()
	}
	t, err := app.Timelines.Create(ctx, blockID)
	if err != nil {
		return err
	}

	t.StartDate = startDate
	t.EndDate = endDate
	t.TimeScale = domain.TimeScale(scale)
	t.ShowTodayLine = todayLine
	t.WeekStartsOn = time.Monday
	if weekStart == "sunday" {
		t.WeekStartsOn = time.Sunday
	}
	if !excludeWeekends {
		t.Calendar.ExcludeWeekdays = map[time.Weekday]bool{}
	}

	if err := app.Timelines.Save(ctx, blockID, t); err != nil {
		return err
	}

	fmt.Printf("Created timeline block %s\n\n%s\n", blockID, formatter.FormatTimelineSummary(t))
	return nil
}
