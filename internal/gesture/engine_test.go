package gesture

import (
	"testing"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/geometry"
	"github.com/Chilos/project-gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageTarget(id string) Target {
	return Target{Kind: TargetStage, ID: id}
}

func TestDrag_PreservesDurationAndAdvancesStart(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	require.Equal(t, 5, s.Duration)

	left := eng.Mapper().DateToPosition(s.Start)
	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), left))

	// Two cells to the right, clear of any boundary.
	eng.Move(left + 2*eng.Mapper().CellWidth)
	assert.False(t, eng.BoundaryHit())
	require.NoError(t, eng.End(tl))

	// Start advanced by exactly two working days; duration untouched.
	assert.Equal(t, domain.Date(2024, time.January, 3), s.Start)
	assert.Equal(t, 5, s.Duration)
	assert.Equal(t, StateIdle, eng.State())
}

func TestDrag_TracksGrabOffset(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	left := eng.Mapper().DateToPosition(s.Start)

	// Grab in the middle of the bar; moving the pointer one cell moves
	// the bar one cell.
	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), left+90))
	eng.Move(left + 90 + eng.Mapper().CellWidth)
	require.NoError(t, eng.End(tl))

	assert.Equal(t, domain.Date(2024, time.January, 2), s.Start)
}

func TestDrag_ClampsToRightBoundary(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	left := eng.Mapper().DateToPosition(s.Start)
	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), left))

	eng.Move(left + 10000)
	assert.True(t, eng.BoundaryHit())
	require.NoError(t, eng.End(tl))

	assert.Equal(t, 5, s.Duration)
	assert.False(t, s.LastDay().After(tl.EndDate), "stage must end inside the window")
	assert.False(t, s.Start.Before(tl.StartDate))
}

func TestDrag_ClampsToLeftBoundary(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-2")
	left := eng.Mapper().DateToPosition(s.Start)
	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-2"), left))

	eng.Move(left - 10000)
	assert.True(t, eng.BoundaryHit())
	require.NoError(t, eng.End(tl))

	assert.Equal(t, tl.StartDate, s.Start)
	assert.Equal(t, 10, s.Duration)
}

func TestDrag_Milestone_ClampedIntoWindow(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, m := tl.FindMilestone("m-1")
	pos := eng.Mapper().DateToPosition(m.Date)
	require.NoError(t, eng.BeginDrag(tl, Target{Kind: TargetMilestone, ID: "m-1"}, pos))

	eng.Move(pos + 3*eng.Mapper().CellWidth)
	require.NoError(t, eng.End(tl))
	assert.Equal(t, domain.Date(2024, time.January, 8), m.Date)

	require.NoError(t, eng.BeginDrag(tl, Target{Kind: TargetMilestone, ID: "m-1"}, 0))
	eng.Move(-10000)
	require.NoError(t, eng.End(tl))
	assert.Equal(t, tl.StartDate, m.Date)
}

func TestDrag_EntityDeletedMidGesture_SilentlyDiscards(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), 0))
	eng.Move(160)

	// Concurrent deletion before pointer-up.
	tl.Projects[0].Stages = tl.Projects[0].Stages[1:]

	assert.NoError(t, eng.End(tl))
	assert.Equal(t, StateIdle, eng.State())
}

func TestResize_CommitsRoundedDuration(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	initialStart := s.Start
	require.NoError(t, eng.BeginResize(tl, "s-1"))

	left := eng.Mapper().DateToPosition(initialStart)
	eng.Move(left + 3.4*eng.Mapper().CellWidth)
	require.NoError(t, eng.End(tl))

	assert.Equal(t, 3, s.Duration)
	assert.Equal(t, initialStart, s.Start, "resize never moves the start")
}

func TestResize_WidthFlooredAtHalfCell(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	require.NoError(t, eng.BeginResize(tl, "s-1"))
	left := eng.Mapper().DateToPosition(domain.Date(2024, time.January, 1))
	eng.Move(left - 500)

	assert.True(t, eng.BoundaryHit())
	assert.Equal(t, eng.Mapper().CellWidth/2, eng.VisualWidth())

	_, s := tl.FindStage("s-1")
	require.NoError(t, eng.End(tl))
	assert.Equal(t, 1, s.Duration)
}

func TestGestures_DoNotNest(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), 0))
	assert.Error(t, eng.BeginDrag(tl, stageTarget("s-2"), 0))
	assert.Error(t, eng.BeginResize(tl, "s-2"))
}

func TestCancel_LeavesModelUntouched(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	before := *s

	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), 0))
	eng.Move(400)
	eng.Cancel()

	assert.Equal(t, StateIdle, eng.State())
	assert.Equal(t, before, *s)
}

func TestMoveWhileIdle_IsNoOp(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	eng.Move(1000)
	assert.Equal(t, 0.0, eng.VisualPosition())
	assert.Equal(t, StateIdle, eng.State())
}

func TestDrag_RepeatedMoves_OnlyFinalPositionCommits(t *testing.T) {
	tl := testutil.SampleTimeline()
	eng := NewEngine(tl)

	_, s := tl.FindStage("s-1")
	left := eng.Mapper().DateToPosition(s.Start)
	require.NoError(t, eng.BeginDrag(tl, stageTarget("s-1"), left))

	for _, px := range []float64{left + 200, left + 30, left + 85, left + geometry.WidthFromDuration(1, eng.Mapper().CellWidth)} {
		eng.Move(px)
		// Model untouched while the pointer is down.
		assert.Equal(t, domain.Date(2024, time.January, 1), s.Start)
	}

	require.NoError(t, eng.End(tl))
	assert.Equal(t, domain.Date(2024, time.January, 2), s.Start)
	assert.Equal(t, 5, s.Duration)
}
