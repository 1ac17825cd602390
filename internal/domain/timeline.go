package domain

import (
	"fmt"
	"time"
)

// Timeline is the root of the chart model: the horizontal window, the
// calendar rules, and every entity positioned against them.
type Timeline struct {
	Projects      []*Project
	Sprints       []*Sprint
	StartDate     time.Time
	EndDate       time.Time
	Calendar      CalendarConfig
	TimeScale     TimeScale
	WeekStartsOn  time.Weekday
	ShowTodayLine bool
}

// NewTimeline returns the default empty model: a one-month window starting
// on the given day, weekends excluded, day scale, Monday week start.
func NewTimeline(today time.Time) *Timeline {
	start := DayOf(today)
	return &Timeline{
		Projects:      []*Project{},
		Sprints:       []*Sprint{},
		StartDate:     start,
		EndDate:       start.AddDate(0, 1, 0),
		Calendar:      DefaultCalendarConfig(),
		TimeScale:     ScaleDay,
		WeekStartsOn:  time.Monday,
		ShowTodayLine: true,
	}
}

// Validate checks the window invariant.
func (t *Timeline) Validate() error {
	if DayOf(t.EndDate).Before(DayOf(t.StartDate)) {
		return fmt.Errorf("timeline ends (%s) before it starts (%s)",
			FormatDate(t.EndDate), FormatDate(t.StartDate))
	}
	return nil
}

// ContainsDay reports whether d falls inside the timeline window, both
// ends inclusive.
func (t *Timeline) ContainsDay(d time.Time) bool {
	day := DayOf(d)
	return !day.Before(DayOf(t.StartDate)) && !day.After(DayOf(t.EndDate))
}

// Sanitize drops entities whose dates fall outside the window so the model
// is safe to lay out: stages whose start is out of range, milestones whose
// date is out of range, and sprints not fully contained. Idempotent.
func (t *Timeline) Sanitize() {
	for _, p := range t.Projects {
		stages := p.Stages[:0]
		for _, s := range p.Stages {
			if t.ContainsDay(s.Start) {
				stages = append(stages, s)
			}
		}
		p.Stages = stages

		milestones := p.Milestones[:0]
		for _, m := range p.Milestones {
			if t.ContainsDay(m.Date) {
				milestones = append(milestones, m)
			}
		}
		p.Milestones = milestones
	}

	sprints := t.Sprints[:0]
	for _, s := range t.Sprints {
		if t.ContainsDay(s.Start) && t.ContainsDay(s.End) {
			sprints = append(sprints, s)
		}
	}
	t.Sprints = sprints
}

// ProjectByID returns the project with the given id, or nil.
func (t *Timeline) ProjectByID(id string) *Project {
	for _, p := range t.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindStage locates a stage anywhere in the model, returning its owning
// project as well.
func (t *Timeline) FindStage(id string) (*Project, *Stage) {
	for _, p := range t.Projects {
		if s := p.StageByID(id); s != nil {
			return p, s
		}
	}
	return nil, nil
}

// FindMilestone locates a milestone anywhere in the model, returning its
// owning project as well.
func (t *Timeline) FindMilestone(id string) (*Project, *Milestone) {
	for _, p := range t.Projects {
		if m := p.MilestoneByID(id); m != nil {
			return p, m
		}
	}
	return nil, nil
}

// SprintByID returns the sprint with the given id, or nil.
func (t *Timeline) SprintByID(id string) *Sprint {
	for _, s := range t.Sprints {
		if s.ID == id {
			return s
		}
	}
	return nil
}
