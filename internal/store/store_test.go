package store

import (
	"testing"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilModelGetsDefault(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s.Model())
	assert.NoError(t, s.Model().Validate())
}

func TestAddProject_GeneratesID(t *testing.T) {
	s := New(testutil.SampleTimeline())

	p := s.AddProject("Research", "mika")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.LayoutInline, p.Layout)
	require.NotNil(t, p.Assignee)
	assert.Equal(t, "mika", p.Assignee.Name)
	assert.Len(t, s.Model().Projects, 2)
}

func TestRenameProject_NotFound(t *testing.T) {
	s := New(testutil.SampleTimeline())

	err := s.RenameProject("nope", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.RenameProject("p-1", "Relaunch"))
	assert.Equal(t, "Relaunch", s.Model().ProjectByID("p-1").Name)
}

func TestAddStage_ValidatesAndAssignsID(t *testing.T) {
	s := New(testutil.SampleTimeline())

	stage, err := s.AddStage("p-1", domain.Stage{
		Name:     "QA",
		Start:    domain.Date(2024, time.January, 15),
		Duration: 3,
		Color:    "#336699",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stage.ID)
	assert.Len(t, s.Model().Projects[0].Stages, 3)

	_, err = s.AddStage("p-1", domain.Stage{Name: "Bad", Start: domain.Date(2024, time.January, 15), Duration: 0})
	assert.Error(t, err)

	_, err = s.AddStage("ghost", domain.Stage{Name: "QA", Start: domain.Date(2024, time.January, 15), Duration: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStage_RejectsInvalidWithoutMutating(t *testing.T) {
	s := New(testutil.SampleTimeline())

	err := s.UpdateStage("s-1", "Design", domain.Date(2024, time.January, 2), 0, "#FF0000")
	assert.Error(t, err)

	_, st := s.Model().FindStage("s-1")
	assert.Equal(t, 5, st.Duration, "failed update must not partially apply")
	assert.Equal(t, domain.Date(2024, time.January, 1), st.Start)

	require.NoError(t, s.UpdateStage("s-1", "Design v2", domain.Date(2024, time.January, 2), 4, "#FF0000"))
	assert.Equal(t, "Design v2", st.Name)
	assert.Equal(t, 4, st.Duration)
}

func TestRemoveStage(t *testing.T) {
	s := New(testutil.SampleTimeline())

	require.NoError(t, s.RemoveStage("s-1"))
	assert.Len(t, s.Model().Projects[0].Stages, 1)
	assert.ErrorIs(t, s.RemoveStage("s-1"), ErrNotFound)
}

func TestMilestoneLifecycle(t *testing.T) {
	s := New(testutil.SampleTimeline())

	m, err := s.AddMilestone("p-1", domain.Milestone{Name: "Beta", Date: domain.Date(2024, time.January, 20)})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)

	require.NoError(t, s.RemoveMilestone(m.ID))
	assert.ErrorIs(t, s.RemoveMilestone(m.ID), ErrNotFound)
}

func TestSprintLifecycle(t *testing.T) {
	s := New(testutil.SampleTimeline())

	_, err := s.AddSprint(domain.Sprint{Name: "S2", Start: domain.Date(2024, time.January, 20), End: domain.Date(2024, time.January, 15)})
	assert.Error(t, err, "inverted sprint must be rejected")

	sp, err := s.AddSprint(domain.Sprint{Name: "S2", Start: domain.Date(2024, time.January, 15), End: domain.Date(2024, time.January, 26)})
	require.NoError(t, err)

	require.NoError(t, s.RemoveSprint(sp.ID))
	assert.ErrorIs(t, s.RemoveSprint(sp.ID), ErrNotFound)
}

func TestSetWindow_Sanitizes(t *testing.T) {
	s := New(testutil.SampleTimeline())

	// Shrink the window so the later stage falls out.
	require.NoError(t, s.SetWindow(domain.Date(2024, time.January, 1), domain.Date(2024, time.January, 5)))

	require.Len(t, s.Model().Projects[0].Stages, 1)
	assert.Equal(t, "s-1", s.Model().Projects[0].Stages[0].ID)
	assert.Empty(t, s.Model().Sprints, "sprint no longer fully contained")

	assert.Error(t, s.SetWindow(domain.Date(2024, time.February, 1), domain.Date(2024, time.January, 1)))
}

func TestSetData_Sanitizes(t *testing.T) {
	s := New(nil)

	tl := testutil.SampleTimeline()
	tl.Projects[0].Stages[1].Start = domain.Date(2025, time.June, 1)
	s.SetData(tl)

	assert.Len(t, s.Model().Projects[0].Stages, 1)
}
