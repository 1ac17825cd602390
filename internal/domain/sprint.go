package domain

import (
	"fmt"
	"time"
)

// Sprint is a cross-cutting grouping band on the chart, independent of
// projects. Sprints keep insertion order and are assumed non-overlapping by
// convention; overlap is not enforced.
type Sprint struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// Validate checks the sprint invariants.
func (s *Sprint) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("sprint name is required")
	}
	if DayOf(s.End).Before(DayOf(s.Start)) {
		return fmt.Errorf("sprint %q ends (%s) before it starts (%s)",
			s.Name, FormatDate(s.End), FormatDate(s.Start))
	}
	return nil
}
