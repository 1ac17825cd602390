package domain

import (
	"fmt"
	"regexp"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Assignee identifies who a stage, milestone or project belongs to.
type Assignee struct {
	Name string
}

// Stage is a time-boxed bar on the chart. Duration is always counted in
// calendar days regardless of the axis granularity; the end instant is
// Start + Duration days, exclusive.
type Stage struct {
	ID       string
	Name     string
	Start    time.Time
	Duration int
	Color    string
	Assignee *Assignee
}

// End returns the exclusive end instant of the stage.
func (s *Stage) End() time.Time {
	return DayOf(s.Start).AddDate(0, 0, s.Duration)
}

// LastDay returns the final calendar day the stage occupies.
func (s *Stage) LastDay() time.Time {
	return DayOf(s.Start).AddDate(0, 0, s.Duration-1)
}

// Validate checks the stage invariants.
func (s *Stage) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("stage name is required")
	}
	if s.Duration < 1 {
		return fmt.Errorf("stage duration must be at least 1 day, got %d", s.Duration)
	}
	if s.Color != "" && !hexColorPattern.MatchString(s.Color) {
		return fmt.Errorf("stage color %q must be a 6-digit hex code", s.Color)
	}
	return nil
}

// Milestone is a single-day marker with no duration.
type Milestone struct {
	ID       string
	Name     string
	Date     time.Time
	Color    string
	Assignee *Assignee
}

// Validate checks the milestone invariants.
func (m *Milestone) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.Color != "" && !hexColorPattern.MatchString(m.Color) {
		return fmt.Errorf("milestone color %q must be a 6-digit hex code", m.Color)
	}
	return nil
}

// Project owns an ordered list of stages and milestones. Ownership is
// composition: entities are never shared between projects.
type Project struct {
	ID         string
	Name       string
	Assignee   *Assignee
	Stages     []*Stage
	Milestones []*Milestone
	Layout     ProjectLayout
}

// StageByID returns the project's stage with the given id, or nil.
func (p *Project) StageByID(id string) *Stage {
	for _, s := range p.Stages {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// MilestoneByID returns the project's milestone with the given id, or nil.
func (p *Project) MilestoneByID(id string) *Milestone {
	for _, m := range p.Milestones {
		if m.ID == id {
			return m
		}
	}
	return nil
}
