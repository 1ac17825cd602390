package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure for a timeline definition file.
// Both YAML and JSON are accepted; the format is picked by file extension.
type ImportSchema struct {
	Timeline TimelineImport  `yaml:"timeline" json:"timeline"`
	Calendar *CalendarImport `yaml:"calendar,omitempty" json:"calendar,omitempty"`
	Projects []ProjectImport `yaml:"projects" json:"projects"`
	Sprints  []SprintImport  `yaml:"sprints,omitempty" json:"sprints,omitempty"`
}

// TimelineImport defines the window and axis settings.
type TimelineImport struct {
	StartDate     string `yaml:"start_date" json:"start_date"`
	EndDate       string `yaml:"end_date" json:"end_date"`
	TimeScale     string `yaml:"time_scale,omitempty" json:"time_scale,omitempty"`
	WeekStartsOn  *int   `yaml:"week_starts_on,omitempty" json:"week_starts_on,omitempty"`
	ShowTodayLine *bool  `yaml:"show_today_line,omitempty" json:"show_today_line,omitempty"`
}

// CalendarImport defines the working-day rules.
type CalendarImport struct {
	ExcludeWeekdays []int    `yaml:"exclude_weekdays,omitempty" json:"exclude_weekdays,omitempty"`
	IncludeDates    []string `yaml:"include_dates,omitempty" json:"include_dates,omitempty"`
	ExcludeDates    []string `yaml:"exclude_dates,omitempty" json:"exclude_dates,omitempty"`
}

// ProjectImport defines one project row group.
type ProjectImport struct {
	Name       string            `yaml:"name" json:"name"`
	Assignee   string            `yaml:"assignee,omitempty" json:"assignee,omitempty"`
	Layout     string            `yaml:"layout,omitempty" json:"layout,omitempty"`
	Stages     []StageImport     `yaml:"stages,omitempty" json:"stages,omitempty"`
	Milestones []MilestoneImport `yaml:"milestones,omitempty" json:"milestones,omitempty"`
}

// StageImport defines a time-boxed stage.
type StageImport struct {
	Name     string `yaml:"name" json:"name"`
	Start    string `yaml:"start" json:"start"`
	Duration int    `yaml:"duration" json:"duration"`
	Color    string `yaml:"color,omitempty" json:"color,omitempty"`
	Assignee string `yaml:"assignee,omitempty" json:"assignee,omitempty"`
}

// MilestoneImport defines a single-day milestone.
type MilestoneImport struct {
	Name     string `yaml:"name" json:"name"`
	Date     string `yaml:"date" json:"date"`
	Color    string `yaml:"color,omitempty" json:"color,omitempty"`
	Assignee string `yaml:"assignee,omitempty" json:"assignee,omitempty"`
}

// SprintImport defines a grouping band.
type SprintImport struct {
	Name  string `yaml:"name" json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// LoadImportSchema reads and parses a timeline definition file. Files
// ending in .json parse as JSON; everything else parses as YAML.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
