package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chilos/project-gantt/internal/domain"
)

func TestConvert_FullSchema(t *testing.T) {
	wso := 0
	showToday := false
	schema := validSchema()
	schema.Timeline.TimeScale = "week"
	schema.Timeline.WeekStartsOn = &wso
	schema.Timeline.ShowTodayLine = &showToday
	schema.Calendar = &CalendarImport{
		ExcludeWeekdays: []int{0, 6},
		IncludeDates:    []string{"2024-01-06"},
		ExcludeDates:    []string{"2024-01-10"},
	}
	schema.Projects[0].Assignee = "dana"
	schema.Projects[0].Layout = "multiline"

	model, err := Convert(schema)
	require.NoError(t, err)

	assert.Equal(t, domain.Date(2024, 1, 1), model.StartDate)
	assert.Equal(t, domain.Date(2024, 3, 31), model.EndDate)
	assert.Equal(t, domain.ScaleWeek, model.TimeScale)
	assert.Equal(t, time.Sunday, model.WeekStartsOn)
	assert.False(t, model.ShowTodayLine)

	assert.True(t, model.Calendar.ExcludeWeekdays[time.Saturday])
	assert.True(t, model.Calendar.IncludeDates["2024-01-06"])
	assert.True(t, model.Calendar.ExcludeDates["2024-01-10"])

	require.Len(t, model.Projects, 1)
	p := model.Projects[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Launch", p.Name)
	assert.Equal(t, domain.LayoutMultiline, p.Layout)
	require.NotNil(t, p.Assignee)
	assert.Equal(t, "dana", p.Assignee.Name)

	require.Len(t, p.Stages, 1)
	s := p.Stages[0]
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, domain.Date(2024, 1, 1), s.Start)
	assert.Equal(t, 5, s.Duration)
	assert.Equal(t, "#FF0000", s.Color)

	require.Len(t, p.Milestones, 1)
	assert.Equal(t, domain.Date(2024, 1, 3), p.Milestones[0].Date)

	require.Len(t, model.Sprints, 1)
	assert.Equal(t, domain.Date(2024, 1, 12), model.Sprints[0].End)
}

func TestConvert_Defaults(t *testing.T) {
	schema := &ImportSchema{
		Timeline: TimelineImport{StartDate: "2024-01-01", EndDate: "2024-01-31"},
	}

	model, err := Convert(schema)
	require.NoError(t, err)

	assert.Equal(t, domain.ScaleDay, model.TimeScale)
	assert.Equal(t, time.Monday, model.WeekStartsOn)
	assert.True(t, model.ShowTodayLine)
	assert.True(t, model.Calendar.ExcludeWeekdays[time.Saturday])
	assert.True(t, model.Calendar.ExcludeWeekdays[time.Sunday])
	assert.Empty(t, model.Projects)
	assert.NoError(t, model.Validate())
}

func TestConvert_UniqueIDs(t *testing.T) {
	schema := validSchema()
	schema.Projects[0].Stages = append(schema.Projects[0].Stages,
		StageImport{Name: "Build", Start: "2024-01-08", Duration: 10})

	model, err := Convert(schema)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range model.Projects {
		seen[p.ID] = true
		for _, s := range p.Stages {
			assert.False(t, seen[s.ID])
			seen[s.ID] = true
		}
		for _, m := range p.Milestones {
			assert.False(t, seen[m.ID])
			seen[m.ID] = true
		}
	}
}

func TestConvert_BadDate(t *testing.T) {
	schema := validSchema()
	schema.Projects[0].Stages[0].Start = "bogus"

	_, err := Convert(schema)
	assert.Error(t, err)
}
