// Package geometry converts between calendar dates and horizontal pixel
// positions on the chart, for both daily and weekly axis granularity.
package geometry

import (
	"math"
	"time"

	"github.com/Chilos/project-gantt/internal/calendar"
	"github.com/Chilos/project-gantt/internal/domain"
)

// DefaultDayCellWidth is the rendering width of one working day.
// Week cells render at twice the day width by convention.
const (
	DefaultDayCellWidth  = 40.0
	DefaultWeekCellWidth = 80.0
)

// Mapper converts dates to pixel positions and back, given the timeline
// start, a cell width, the calendar rules and the axis granularity.
type Mapper struct {
	Start        time.Time
	CellWidth    float64
	Calendar     domain.CalendarConfig
	Scale        domain.TimeScale
	WeekStartsOn time.Weekday
}

// NewMapper builds a Mapper for the given model using the default cell
// width for its time scale.
func NewMapper(t *domain.Timeline) Mapper {
	width := DefaultDayCellWidth
	if t.TimeScale == domain.ScaleWeek {
		width = DefaultWeekCellWidth
	}
	return Mapper{
		Start:        domain.DayOf(t.StartDate),
		CellWidth:    width,
		Calendar:     t.Calendar,
		Scale:        t.TimeScale,
		WeekStartsOn: t.WeekStartsOn,
	}
}

// DateToPosition returns the pixel position of date's left edge. The
// timeline start is the first working unit and maps to position zero;
// positions never go negative.
func (m Mapper) DateToPosition(date time.Time) float64 {
	if m.Scale == domain.ScaleWeek {
		startWeek := calendar.WeekStart(m.Start, m.WeekStartsOn)
		dateWeek := calendar.WeekStart(date, m.WeekStartsOn)
		weeks := math.Floor(float64(domain.DaysBetween(startWeek, dateWeek)) / 7)
		return math.Max(0, weeks*m.CellWidth)
	}
	units := calendar.CountWorkingDays(m.Start, date, m.Calendar)
	return math.Max(0, float64(units-1)) * m.CellWidth
}

// PositionToDate is the inverse of DateToPosition: the pixel position is
// rounded to the nearest cell index and walked back to a date. In day mode
// positions at or left of zero map to the first working day of the
// timeline. Fails only when the calendar walk exhausts its scan cap.
func (m Mapper) PositionToDate(px float64) (time.Time, error) {
	index := int(math.Round(px / m.CellWidth))
	if m.Scale == domain.ScaleWeek {
		if index < 0 {
			index = 0
		}
		return calendar.WeekStart(m.Start, m.WeekStartsOn).AddDate(0, 0, index*7), nil
	}
	first, err := calendar.NextWorkingDay(m.Start, m.Calendar)
	if err != nil {
		return time.Time{}, err
	}
	if index <= 0 {
		return first, nil
	}
	return calendar.AddWorkingDays(first, index, m.Calendar)
}

// Limits returns the selectable pixel range for the window ending at end.
// The max extends one cell past the final unit's left edge so the full
// width of the last unit is selectable.
func (m Mapper) Limits(end time.Time) (min, max float64) {
	return 0, m.DateToPosition(end) + m.CellWidth
}

// SnapToGrid aligns px to the nearest cell boundary.
func SnapToGrid(px, cellWidth float64) float64 {
	return math.Round(px/cellWidth) * cellWidth
}

// ConstrainPosition clamps pos so that pos >= min and pos+elementWidth <=
// max. The left bound is enforced first, then the right bound, and the
// result is floored at min again so a too-wide element pins left.
func ConstrainPosition(pos, elementWidth, min, max float64) float64 {
	if pos < min {
		pos = min
	}
	if pos+elementWidth > max {
		pos = max - elementWidth
	}
	if pos < min {
		pos = min
	}
	return pos
}

// DurationFromWidth converts a freehand pixel width back to whole units,
// rounding half up and never below one.
func DurationFromWidth(widthPx, cellWidth float64) int {
	d := int(math.Round(widthPx / cellWidth))
	if d < 1 {
		return 1
	}
	return d
}

// WidthFromDuration is the exact pixel width of duration units.
func WidthFromDuration(duration int, cellWidth float64) float64 {
	return float64(duration) * cellWidth
}
