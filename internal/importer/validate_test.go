package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *ImportSchema {
	return &ImportSchema{
		Timeline: TimelineImport{StartDate: "2024-01-01", EndDate: "2024-03-31"},
		Projects: []ProjectImport{
			{
				Name: "Launch",
				Stages: []StageImport{
					{Name: "Design", Start: "2024-01-01", Duration: 5, Color: "#FF0000"},
				},
				Milestones: []MilestoneImport{
					{Name: "Kickoff", Date: "2024-01-03"},
				},
			},
		},
		Sprints: []SprintImport{
			{Name: "Sprint 1", Start: "2024-01-01", End: "2024-01-12"},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validSchema()))
}

func TestValidateImportSchema_Timeline(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ImportSchema)
		wantMsg string
	}{
		{
			name:    "missing start date",
			mutate:  func(s *ImportSchema) { s.Timeline.StartDate = "" },
			wantMsg: "timeline.start_date is required",
		},
		{
			name:    "malformed end date",
			mutate:  func(s *ImportSchema) { s.Timeline.EndDate = "31/03/2024" },
			wantMsg: "timeline.end_date: invalid date",
		},
		{
			name:    "window reversed",
			mutate:  func(s *ImportSchema) { s.Timeline.EndDate = "2023-12-01" },
			wantMsg: "is before start_date",
		},
		{
			name:    "bad time scale",
			mutate:  func(s *ImportSchema) { s.Timeline.TimeScale = "month" },
			wantMsg: "must be day or week",
		},
		{
			name: "bad week start",
			mutate: func(s *ImportSchema) {
				v := 3
				s.Timeline.WeekStartsOn = &v
			},
			wantMsg: "week_starts_on must be 0 (Sunday) or 1 (Monday)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validSchema()
			tt.mutate(schema)

			errs := ValidateImportSchema(schema)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func TestValidateImportSchema_Entities(t *testing.T) {
	schema := validSchema()
	schema.Calendar = &CalendarImport{
		ExcludeWeekdays: []int{7},
		IncludeDates:    []string{"not-a-date"},
	}
	schema.Projects[0].Stages[0].Duration = 0
	schema.Projects[0].Stages[0].Color = "red"
	schema.Projects[0].Milestones[0].Name = ""
	schema.Sprints[0].End = "2023-12-31"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 6)

	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "7 is not a weekday")
	assert.Contains(t, joined, `include_dates: invalid date "not-a-date"`)
	assert.Contains(t, joined, "duration must be at least 1")
	assert.Contains(t, joined, "must be a 6-digit hex code")
	assert.Contains(t, joined, "milestones[0].name is required")
	assert.Contains(t, joined, `end "2023-12-31" is before start`)
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := validSchema()
	schema.Timeline.StartDate = ""
	schema.Projects[0].Name = ""
	schema.Sprints[0].Start = "bogus"

	assert.Len(t, ValidateImportSchema(schema), 3)
}
