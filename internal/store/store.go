// Package store is the in-memory CRUD surface over one timeline model.
// Mutations are direct object mutation; entity counts are tens per
// project, so lookups are linear scans.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when an id does not resolve to an entity.
var ErrNotFound = errors.New("entity not found")

// Store wraps a timeline model with id-keyed accessors and mutators.
// IDs are generated once at creation time and never reused.
type Store struct {
	model *domain.Timeline
}

// New wraps an existing model. A nil model gets the default timeline.
func New(model *domain.Timeline) *Store {
	if model == nil {
		model = domain.NewTimeline(time.Now())
	}
	return &Store{model: model}
}

// Model returns the underlying timeline.
func (s *Store) Model() *domain.Timeline { return s.model }

// SetData replaces the model wholesale and re-sanitizes it.
func (s *Store) SetData(model *domain.Timeline) {
	model.Sanitize()
	s.model = model
}

// SetWindow moves the timeline window and drops entities that fall
// outside the new range.
func (s *Store) SetWindow(start, end time.Time) error {
	if domain.DayOf(end).Before(domain.DayOf(start)) {
		return fmt.Errorf("window ends (%s) before it starts (%s)",
			domain.FormatDate(end), domain.FormatDate(start))
	}
	s.model.StartDate = domain.DayOf(start)
	s.model.EndDate = domain.DayOf(end)
	s.model.Sanitize()
	return nil
}

// AddProject appends a new project and returns it.
func (s *Store) AddProject(name, assignee string) *domain.Project {
	p := &domain.Project{
		ID:         uuid.New().String(),
		Name:       name,
		Stages:     []*domain.Stage{},
		Milestones: []*domain.Milestone{},
		Layout:     domain.LayoutInline,
	}
	if assignee != "" {
		p.Assignee = &domain.Assignee{Name: assignee}
	}
	s.model.Projects = append(s.model.Projects, p)
	return p
}

// RenameProject changes a project's display name.
func (s *Store) RenameProject(id, name string) error {
	p := s.model.ProjectByID(id)
	if p == nil {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	p.Name = name
	return nil
}

// SetProjectLayout switches a project between inline and multiline rows.
func (s *Store) SetProjectLayout(id string, layout domain.ProjectLayout) error {
	p := s.model.ProjectByID(id)
	if p == nil {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	if !domain.ValidProjectLayouts[string(layout)] {
		return fmt.Errorf("invalid layout %q", layout)
	}
	p.Layout = layout
	return nil
}

// RemoveProject deletes a project and everything it owns.
func (s *Store) RemoveProject(id string) error {
	for i, p := range s.model.Projects {
		if p.ID == id {
			s.model.Projects = append(s.model.Projects[:i], s.model.Projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("project %q: %w", id, ErrNotFound)
}

// AddStage appends a stage to a project after validating it.
func (s *Store) AddStage(projectID string, stage domain.Stage) (*domain.Stage, error) {
	p := s.model.ProjectByID(projectID)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}
	stage.ID = uuid.New().String()
	stage.Start = domain.DayOf(stage.Start)
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	out := stage
	p.Stages = append(p.Stages, &out)
	return &out, nil
}

// UpdateStage replaces a stage's mutable fields, keeping its id.
func (s *Store) UpdateStage(id string, name string, start time.Time, duration int, color string) error {
	_, st := s.model.FindStage(id)
	if st == nil {
		return fmt.Errorf("stage %q: %w", id, ErrNotFound)
	}
	next := *st
	next.Name = name
	next.Start = domain.DayOf(start)
	next.Duration = duration
	next.Color = color
	if err := next.Validate(); err != nil {
		return err
	}
	*st = next
	return nil
}

// RemoveStage deletes a stage wherever it lives.
func (s *Store) RemoveStage(id string) error {
	for _, p := range s.model.Projects {
		for i, st := range p.Stages {
			if st.ID == id {
				p.Stages = append(p.Stages[:i], p.Stages[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("stage %q: %w", id, ErrNotFound)
}

// AddMilestone appends a milestone to a project after validating it.
func (s *Store) AddMilestone(projectID string, m domain.Milestone) (*domain.Milestone, error) {
	p := s.model.ProjectByID(projectID)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}
	m.ID = uuid.New().String()
	m.Date = domain.DayOf(m.Date)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := m
	p.Milestones = append(p.Milestones, &out)
	return &out, nil
}

// RemoveMilestone deletes a milestone wherever it lives.
func (s *Store) RemoveMilestone(id string) error {
	for _, p := range s.model.Projects {
		for i, m := range p.Milestones {
			if m.ID == id {
				p.Milestones = append(p.Milestones[:i], p.Milestones[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("milestone %q: %w", id, ErrNotFound)
}

// AddSprint appends a sprint after validating it.
func (s *Store) AddSprint(sp domain.Sprint) (*domain.Sprint, error) {
	sp.ID = uuid.New().String()
	sp.Start = domain.DayOf(sp.Start)
	sp.End = domain.DayOf(sp.End)
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	out := sp
	s.model.Sprints = append(s.model.Sprints, &out)
	return &out, nil
}

// RemoveSprint deletes a sprint.
func (s *Store) RemoveSprint(id string) error {
	for i, sp := range s.model.Sprints {
		if sp.ID == id {
			s.model.Sprints = append(s.model.Sprints[:i], s.model.Sprints[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("sprint %q: %w", id, ErrNotFound)
}
