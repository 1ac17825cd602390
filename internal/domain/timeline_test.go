package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janTimeline() *Timeline {
	return &Timeline{
		Projects: []*Project{
			{
				ID:   "p-1",
				Name: "Launch",
				Stages: []*Stage{
					{ID: "s-in", Name: "In", Start: Date(2024, time.January, 10), Duration: 3},
					{ID: "s-out", Name: "Out", Start: Date(2024, time.February, 10), Duration: 3},
				},
				Milestones: []*Milestone{
					{ID: "m-in", Name: "In", Date: Date(2024, time.January, 5)},
					{ID: "m-out", Name: "Out", Date: Date(2023, time.December, 25)},
				},
			},
		},
		Sprints: []*Sprint{
			{ID: "sp-in", Name: "In", Start: Date(2024, time.January, 1), End: Date(2024, time.January, 12)},
			{ID: "sp-out", Name: "Straddles", Start: Date(2024, time.January, 25), End: Date(2024, time.February, 5)},
		},
		StartDate: Date(2024, time.January, 1),
		EndDate:   Date(2024, time.January, 31),
		Calendar:  DefaultCalendarConfig(),
		TimeScale: ScaleDay,
	}
}

func TestNewTimeline_Defaults(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.Local)
	tl := NewTimeline(now)

	assert.Equal(t, Date(2024, time.June, 15), tl.StartDate)
	assert.Equal(t, Date(2024, time.July, 15), tl.EndDate)
	assert.Equal(t, ScaleDay, tl.TimeScale)
	assert.Equal(t, time.Monday, tl.WeekStartsOn)
	assert.True(t, tl.ShowTodayLine)
	assert.True(t, tl.Calendar.IsDefault())
	assert.Empty(t, tl.Projects)
	assert.NoError(t, tl.Validate())
}

func TestSanitize_DropsOutOfWindowEntities(t *testing.T) {
	tl := janTimeline()
	tl.Sanitize()

	require.Len(t, tl.Projects, 1)
	p := tl.Projects[0]

	require.Len(t, p.Stages, 1)
	assert.Equal(t, "s-in", p.Stages[0].ID)

	require.Len(t, p.Milestones, 1)
	assert.Equal(t, "m-in", p.Milestones[0].ID)

	// A sprint only survives when fully contained in the window.
	require.Len(t, tl.Sprints, 1)
	assert.Equal(t, "sp-in", tl.Sprints[0].ID)
}

func TestSanitize_Idempotent(t *testing.T) {
	tl := janTimeline()
	tl.Sanitize()

	stages := len(tl.Projects[0].Stages)
	milestones := len(tl.Projects[0].Milestones)
	sprints := len(tl.Sprints)

	tl.Sanitize()

	assert.Len(t, tl.Projects[0].Stages, stages)
	assert.Len(t, tl.Projects[0].Milestones, milestones)
	assert.Len(t, tl.Sprints, sprints)
}

func TestFindStage_AndMilestone(t *testing.T) {
	tl := janTimeline()

	p, s := tl.FindStage("s-out")
	require.NotNil(t, s)
	assert.Equal(t, "p-1", p.ID)

	_, missing := tl.FindStage("nope")
	assert.Nil(t, missing)

	p, m := tl.FindMilestone("m-in")
	require.NotNil(t, m)
	assert.Equal(t, "p-1", p.ID)
}

func TestTimeline_Validate_RejectsInvertedWindow(t *testing.T) {
	tl := janTimeline()
	tl.EndDate = Date(2023, time.December, 1)
	assert.Error(t, tl.Validate())
}
