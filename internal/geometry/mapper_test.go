package geometry

import (
	"testing"
	"time"

	"github.com/Chilos/project-gantt/internal/calendar"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayMapper(cfg domain.CalendarConfig) Mapper {
	return Mapper{
		Start:        domain.Date(2024, time.January, 1),
		CellWidth:    40,
		Calendar:     cfg,
		Scale:        domain.ScaleDay,
		WeekStartsOn: time.Monday,
	}
}

func TestDateToPosition_StartMapsToZero(t *testing.T) {
	m := dayMapper(testutil.NoExclusions())

	assert.Equal(t, 0.0, m.DateToPosition(domain.Date(2024, time.January, 1)))
	assert.Equal(t, 80.0, m.DateToPosition(domain.Date(2024, time.January, 3)))
}

func TestDateToPosition_SkipsNonWorkingDays(t *testing.T) {
	m := dayMapper(testutil.Weekends())

	// Mon Jan 8 is the 6th working day: cell index 5.
	assert.Equal(t, 200.0, m.DateToPosition(domain.Date(2024, time.January, 8)))
	// Before the timeline start the position clamps to zero.
	assert.Equal(t, 0.0, m.DateToPosition(domain.Date(2023, time.December, 20)))
}

func TestPositionToDate_InverseOnGridBoundaries(t *testing.T) {
	m := dayMapper(testutil.Weekends())

	for index := 0; index < 15; index++ {
		px := float64(index) * m.CellWidth
		d, err := m.PositionToDate(px)
		require.NoError(t, err)
		assert.Equal(t, px, m.DateToPosition(d), "cell %d", index)
	}
}

func TestPositionToDate_NegativeClampsToFirstWorkingDay(t *testing.T) {
	cfg := testutil.Weekends()
	m := Mapper{
		Start:     domain.Date(2024, time.January, 6), // Saturday
		CellWidth: 40,
		Calendar:  cfg,
		Scale:     domain.ScaleDay,
	}

	d, err := m.PositionToDate(-120)
	require.NoError(t, err)
	assert.Equal(t, domain.Date(2024, time.January, 8), d)
}

func TestDateToPosition_Monotonic(t *testing.T) {
	m := dayMapper(testutil.Weekends())
	scale := calendar.WorkingDayScale(m.Start, domain.Date(2024, time.February, 29), m.Calendar)

	for i := 1; i < len(scale); i++ {
		assert.Less(t, m.DateToPosition(scale[i-1]), m.DateToPosition(scale[i]),
			"%s vs %s", domain.FormatDate(scale[i-1]), domain.FormatDate(scale[i]))
	}
}

func TestWeekMode_Positions(t *testing.T) {
	m := Mapper{
		Start:        domain.Date(2024, time.January, 3), // Wednesday
		CellWidth:    80,
		Calendar:     testutil.Weekends(),
		Scale:        domain.ScaleWeek,
		WeekStartsOn: time.Monday,
	}

	// Same week as the start: position 0.
	assert.Equal(t, 0.0, m.DateToPosition(domain.Date(2024, time.January, 5)))
	// Next week.
	assert.Equal(t, 80.0, m.DateToPosition(domain.Date(2024, time.January, 8)))
	assert.Equal(t, 80.0, m.DateToPosition(domain.Date(2024, time.January, 14)))

	d, err := m.PositionToDate(160)
	require.NoError(t, err)
	assert.Equal(t, domain.Date(2024, time.January, 15), d)
}

func TestLimits_ExtendOneCellPastEnd(t *testing.T) {
	m := dayMapper(testutil.NoExclusions())

	min, max := m.Limits(domain.Date(2024, time.January, 10))
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 9*40.0+40, max)
}

func TestSnapToGrid(t *testing.T) {
	assert.Equal(t, 80.0, SnapToGrid(75, 40))
	assert.Equal(t, 40.0, SnapToGrid(55, 40))
	assert.Equal(t, 0.0, SnapToGrid(12, 40))
}

func TestConstrainPosition(t *testing.T) {
	// Inside the range: untouched.
	assert.Equal(t, 80.0, ConstrainPosition(80, 40, 0, 400))
	// Left overflow.
	assert.Equal(t, 0.0, ConstrainPosition(-40, 40, 0, 400))
	// Right overflow: pull back so pos+width == max.
	assert.Equal(t, 360.0, ConstrainPosition(380, 40, 0, 400))
	// Element wider than the range pins left.
	assert.Equal(t, 0.0, ConstrainPosition(100, 500, 0, 400))
}

func TestDurationFromWidth_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 3, DurationFromWidth(3.4*40, 40))
	assert.Equal(t, 4, DurationFromWidth(3.5*40, 40))
	assert.Equal(t, 1, DurationFromWidth(0, 40))
	assert.Equal(t, 1, DurationFromWidth(12, 40))
}

func TestWidthFromDuration(t *testing.T) {
	assert.Equal(t, 200.0, WidthFromDuration(5, 40))
}

func TestNewMapper_WeekScaleDoublesCellWidth(t *testing.T) {
	tl := testutil.SampleTimeline()
	assert.Equal(t, DefaultDayCellWidth, NewMapper(tl).CellWidth)

	tl.TimeScale = domain.ScaleWeek
	assert.Equal(t, DefaultWeekCellWidth, NewMapper(tl).CellWidth)
}
