package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
timeline:
  start_date: "2024-01-01"
  end_date: "2024-03-31"
  time_scale: day
calendar:
  exclude_weekdays: [0, 6]
  include_dates: ["2024-01-06"]
  exclude_dates: ["2024-01-10"]
projects:
  - name: Launch
    assignee: dana
    layout: multiline
    stages:
      - name: Design
        start: "2024-01-01"
        duration: 5
        color: "#FF0000"
      - name: Build
        start: "2024-01-08"
        duration: 10
    milestones:
      - name: Kickoff
        date: "2024-01-03"
sprints:
  - name: Sprint 1
    start: "2024-01-01"
    end: "2024-01-12"
`

const sampleJSON = `{
  "timeline": {"start_date": "2024-01-01", "end_date": "2024-03-31"},
  "projects": [
    {"name": "Launch", "stages": [{"name": "Design", "start": "2024-01-01", "duration": 5}]}
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadImportSchema_YAML(t *testing.T) {
	schema, err := LoadImportSchema(writeTemp(t, "timeline.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", schema.Timeline.StartDate)
	require.NotNil(t, schema.Calendar)
	assert.Equal(t, []int{0, 6}, schema.Calendar.ExcludeWeekdays)
	require.Len(t, schema.Projects, 1)
	assert.Len(t, schema.Projects[0].Stages, 2)
	assert.Len(t, schema.Sprints, 1)
}

func TestLoadImportSchema_JSON(t *testing.T) {
	schema, err := LoadImportSchema(writeTemp(t, "timeline.json", sampleJSON))
	require.NoError(t, err)

	require.Len(t, schema.Projects, 1)
	assert.Equal(t, 5, schema.Projects[0].Stages[0].Duration)
	assert.Nil(t, schema.Calendar)
}

func TestLoadImportSchema_Malformed(t *testing.T) {
	_, err := LoadImportSchema(writeTemp(t, "broken.yaml", "projects: ["))
	assert.Error(t, err)

	_, err = LoadImportSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
