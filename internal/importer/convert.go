package importer

import (
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into a timeline model.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*domain.Timeline, error) {
	start, err := domain.ParseDate(schema.Timeline.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	end, err := domain.ParseDate(schema.Timeline.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}

	t := &domain.Timeline{
		Projects:      []*domain.Project{},
		Sprints:       []*domain.Sprint{},
		StartDate:     start,
		EndDate:       end,
		Calendar:      domain.DefaultCalendarConfig(),
		TimeScale:     domain.ScaleDay,
		WeekStartsOn:  time.Monday,
		ShowTodayLine: true,
	}

	if schema.Timeline.TimeScale != "" {
		t.TimeScale = domain.TimeScale(schema.Timeline.TimeScale)
	}
	if schema.Timeline.WeekStartsOn != nil {
		t.WeekStartsOn = time.Weekday(*schema.Timeline.WeekStartsOn)
	}
	if schema.Timeline.ShowTodayLine != nil {
		t.ShowTodayLine = *schema.Timeline.ShowTodayLine
	}

	if c := schema.Calendar; c != nil {
		cfg := domain.CalendarConfig{
			ExcludeWeekdays: map[time.Weekday]bool{},
			IncludeDates:    map[string]bool{},
			ExcludeDates:    map[string]bool{},
		}
		for _, wd := range c.ExcludeWeekdays {
			cfg.ExcludeWeekdays[time.Weekday(wd)] = true
		}
		for _, d := range c.IncludeDates {
			cfg.IncludeDates[d] = true
		}
		for _, d := range c.ExcludeDates {
			cfg.ExcludeDates[d] = true
		}
		t.Calendar = cfg
	}

	for _, pi := range schema.Projects {
		p := &domain.Project{
			ID:         uuid.New().String(),
			Name:       pi.Name,
			Stages:     []*domain.Stage{},
			Milestones: []*domain.Milestone{},
			Layout:     domain.LayoutInline,
		}
		if pi.Assignee != "" {
			p.Assignee = &domain.Assignee{Name: pi.Assignee}
		}
		if pi.Layout != "" {
			p.Layout = domain.ProjectLayout(pi.Layout)
		}

		for _, si := range pi.Stages {
			d, err := domain.ParseDate(si.Start)
			if err != nil {
				return nil, fmt.Errorf("parsing stage %q start: %w", si.Name, err)
			}
			s := &domain.Stage{
				ID:       uuid.New().String(),
				Name:     si.Name,
				Start:    d,
				Duration: si.Duration,
				Color:    si.Color,
			}
			if si.Assignee != "" {
				s.Assignee = &domain.Assignee{Name: si.Assignee}
			}
			p.Stages = append(p.Stages, s)
		}

		for _, mi := range pi.Milestones {
			d, err := domain.ParseDate(mi.Date)
			if err != nil {
				return nil, fmt.Errorf("parsing milestone %q date: %w", mi.Name, err)
			}
			m := &domain.Milestone{
				ID:    uuid.New().String(),
				Name:  mi.Name,
				Date:  d,
				Color: mi.Color,
			}
			if mi.Assignee != "" {
				m.Assignee = &domain.Assignee{Name: mi.Assignee}
			}
			p.Milestones = append(p.Milestones, m)
		}

		t.Projects = append(t.Projects, p)
	}

	for _, si := range schema.Sprints {
		s, err := domain.ParseDate(si.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing sprint %q start: %w", si.Name, err)
		}
		e, err := domain.ParseDate(si.End)
		if err != nil {
			return nil, fmt.Errorf("parsing sprint %q end: %w", si.Name, err)
		}
		t.Sprints = append(t.Sprints, &domain.Sprint{
			ID:    uuid.New().String(),
			Name:  si.Name,
			Start: s,
			End:   e,
		})
	}

	return t, nil
}
