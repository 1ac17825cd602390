package testutil

import (
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
)

// SampleTimeline builds a small but complete model: a January 2024 window
// with one project holding two stages and a milestone, plus one sprint.
// 2024-01-01 is a Monday, which keeps working-day math easy to eyeball.
func SampleTimeline() *domain.Timeline {
	return &domain.Timeline{
		Projects: []*domain.Project{
			{
				ID:   "p-1",
				Name: "Launch",
				Stages: []*domain.Stage{
					{ID: "s-1", Name: "Design", Start: domain.Date(2024, time.January, 1), Duration: 5, Color: "#FF0000"},
					{ID: "s-2", Name: "Build", Start: domain.Date(2024, time.January, 8), Duration: 10, Color: "#00FF00",
						Assignee: &domain.Assignee{Name: "dana"}},
				},
				Milestones: []*domain.Milestone{
					{ID: "m-1", Name: "Kickoff", Date: domain.Date(2024, time.January, 3)},
				},
				Layout: domain.LayoutInline,
			},
		},
		Sprints: []*domain.Sprint{
			{ID: "sp-1", Name: "Sprint 1", Start: domain.Date(2024, time.January, 1), End: domain.Date(2024, time.January, 12)},
		},
		StartDate:     domain.Date(2024, time.January, 1),
		EndDate:       domain.Date(2024, time.January, 31),
		Calendar:      domain.DefaultCalendarConfig(),
		TimeScale:     domain.ScaleDay,
		WeekStartsOn:  time.Monday,
		ShowTodayLine: true,
	}
}

// NoExclusions is a calendar where every day works.
func NoExclusions() domain.CalendarConfig {
	return domain.CalendarConfig{
		ExcludeWeekdays: map[time.Weekday]bool{},
		IncludeDates:    map[string]bool{},
		ExcludeDates:    map[string]bool{},
	}
}

// Weekends is the default weekend-excluding calendar.
func Weekends() domain.CalendarConfig {
	return domain.DefaultCalendarConfig()
}
