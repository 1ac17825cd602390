// Package gesture maintains the drag/resize invariants of the chart: one
// pointer gesture at a time, visual-only updates while the pointer moves,
// and a single authoritative model mutation when the gesture ends.
package gesture

import (
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/geometry"
)

// State is the gesture lifecycle: Idle -> Dragging -> Idle or
// Idle -> Resizing -> Idle. Gestures never nest.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// TargetKind distinguishes what the pointer grabbed.
type TargetKind int

const (
	TargetStage TargetKind = iota
	TargetMilestone
)

// Target identifies the entity under an active gesture.
type Target struct {
	Kind TargetKind
	ID   string
}

// Engine runs one gesture at a time against a fixed window and mapper.
// All gesture math happens on values captured at gesture start, so the
// model stays untouched until End commits.
type Engine struct {
	mapper      geometry.Mapper
	windowStart time.Time
	windowEnd   time.Time

	state  State
	target Target

	initialStart    time.Time
	initialDuration int
	grabOffset      float64
	leftEdge        float64

	visualPos   float64
	visualWidth float64
	boundaryHit bool
}

// NewEngine builds an idle engine for the given model's window and scale.
func NewEngine(t *domain.Timeline) *Engine {
	return &Engine{
		mapper:      geometry.NewMapper(t),
		windowStart: domain.DayOf(t.StartDate),
		windowEnd:   domain.DayOf(t.EndDate),
	}
}

// State returns the current gesture state.
func (e *Engine) State() State { return e.state }

// VisualPosition returns the element's current visual left edge in pixels.
func (e *Engine) VisualPosition() float64 { return e.visualPos }

// VisualWidth returns the element's current visual width in pixels.
func (e *Engine) VisualWidth() float64 { return e.visualWidth }

// BoundaryHit reports whether the last move was clamped by a window bound.
func (e *Engine) BoundaryHit() bool { return e.boundaryHit }

// Mapper exposes the engine's coordinate mapper.
func (e *Engine) Mapper() geometry.Mapper { return e.mapper }

// BeginDrag starts a drag on a stage or milestone. The pointer offset
// within the element is captured so the drag tracks the grabbed point, not
// the element's corner.
func (e *Engine) BeginDrag(t *domain.Timeline, target Target, pointerX float64) error {
	if e.state != StateIdle {
		return fmt.Errorf("gesture already active")
	}
	switch target.Kind {
	case TargetStage:
		_, s := t.FindStage(target.ID)
		if s == nil {
			return fmt.Errorf("stage %q not found", target.ID)
		}
		e.initialStart = domain.DayOf(s.Start)
		e.initialDuration = s.Duration
		e.visualWidth = geometry.WidthFromDuration(s.Duration, e.mapper.CellWidth)
	case TargetMilestone:
		_, m := t.FindMilestone(target.ID)
		if m == nil {
			return fmt.Errorf("milestone %q not found", target.ID)
		}
		e.initialStart = domain.DayOf(m.Date)
		e.initialDuration = 0
		e.visualWidth = 0
	default:
		return fmt.Errorf("unknown gesture target kind %d", target.Kind)
	}

	e.visualPos = e.mapper.DateToPosition(e.initialStart)
	e.grabOffset = pointerX - e.visualPos
	e.target = target
	e.boundaryHit = false
	e.state = StateDragging
	return nil
}

// BeginResize starts a resize on a stage's right edge. The left edge stays
// fixed for the whole gesture; only the width changes.
func (e *Engine) BeginResize(t *domain.Timeline, stageID string) error {
	if e.state != StateIdle {
		return fmt.Errorf("gesture already active")
	}
	_, s := t.FindStage(stageID)
	if s == nil {
		return fmt.Errorf("stage %q not found", stageID)
	}
	e.initialStart = domain.DayOf(s.Start)
	e.initialDuration = s.Duration
	e.leftEdge = e.mapper.DateToPosition(e.initialStart)
	e.visualPos = e.leftEdge
	e.visualWidth = geometry.WidthFromDuration(s.Duration, e.mapper.CellWidth)
	e.target = Target{Kind: TargetStage, ID: stageID}
	e.boundaryHit = false
	e.state = StateResizing
	return nil
}

// Move applies a pointer position to the active gesture. Updates are
// visual only; the model is untouched until End.
func (e *Engine) Move(pointerX float64) {
	switch e.state {
	case StateDragging:
		raw := pointerX - e.grabOffset
		snapped := geometry.SnapToGrid(raw, e.mapper.CellWidth)
		min, max := e.mapper.Limits(e.windowEnd)
		constrained := geometry.ConstrainPosition(snapped, e.visualWidth, min, max)
		e.boundaryHit = constrained != snapped
		e.visualPos = constrained
	case StateResizing:
		width := pointerX - e.leftEdge
		floor := e.mapper.CellWidth / 2
		e.boundaryHit = width < floor
		if width < floor {
			width = floor
		}
		e.visualWidth = width
	}
}

// End commits the gesture to the model and returns the engine to Idle.
// If the target entity is gone from the model (deleted mid-gesture) the
// mutation is silently discarded. The only error is an exhausted calendar
// walk while converting the final position back to a date.
func (e *Engine) End(t *domain.Timeline) error {
	defer e.reset()

	switch e.state {
	case StateDragging:
		date, err := e.mapper.PositionToDate(e.visualPos)
		if err != nil {
			return err
		}
		switch e.target.Kind {
		case TargetStage:
			_, s := t.FindStage(e.target.ID)
			if s == nil {
				return nil
			}
			s.Start = e.clampStageStart(date, e.initialDuration)
			s.Duration = e.initialDuration
		case TargetMilestone:
			_, m := t.FindMilestone(e.target.ID)
			if m == nil {
				return nil
			}
			m.Date = clampDay(date, e.windowStart, e.windowEnd)
		}

	case StateResizing:
		_, s := t.FindStage(e.target.ID)
		if s == nil {
			return nil
		}
		// Start never changes on a resize; snap the committed width back
		// to whole units to eliminate sub-pixel drift.
		s.Duration = geometry.DurationFromWidth(e.visualWidth, e.mapper.CellWidth)
	}
	return nil
}

// Cancel abandons the active gesture without touching the model. Hosts
// call this on focus loss so a gesture can't dangle forever.
func (e *Engine) Cancel() {
	e.reset()
}

// clampStageStart keeps a duration-preserving move inside the window.
// The start bound is enforced first; if the preserved end then overflows,
// the end bound wins and start is re-derived from it, floored at the
// window start (duration can only shrink visually when the stage is wider
// than the whole window, which Sanitize prevents).
func (e *Engine) clampStageStart(start time.Time, duration int) time.Time {
	s := domain.DayOf(start)
	if s.Before(e.windowStart) {
		s = e.windowStart
	}
	lastDay := s.AddDate(0, 0, duration-1)
	if lastDay.After(e.windowEnd) {
		s = e.windowEnd.AddDate(0, 0, -(duration - 1))
		if s.Before(e.windowStart) {
			s = e.windowStart
		}
	}
	return s
}

func clampDay(d, lo, hi time.Time) time.Time {
	day := domain.DayOf(d)
	if day.Before(lo) {
		return lo
	}
	if day.After(hi) {
		return hi
	}
	return day
}

func (e *Engine) reset() {
	e.state = StateIdle
	e.target = Target{}
	e.grabOffset = 0
	e.leftEdge = 0
	e.visualPos = 0
	e.visualWidth = 0
	e.boundaryHit = false
}
