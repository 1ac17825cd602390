package importer

import (
	"fmt"
	"regexp"
	"time"
)

var (
	validTimeScales = map[string]bool{"": true, "day": true, "week": true}
	validLayouts    = map[string]bool{"": true, "inline": true, "multiline": true}
	hexColor        = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// ValidateImportSchema checks the definition for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateTimeline(&schema.Timeline)...)
	errs = append(errs, validateCalendar(schema.Calendar)...)
	for i := range schema.Projects {
		errs = append(errs, validateProject(i, &schema.Projects[i])...)
	}
	for i, s := range schema.Sprints {
		errs = append(errs, validateSprint(i, s)...)
	}

	return errs
}

func validateTimeline(t *TimelineImport) []error {
	var errs []error

	if t.StartDate == "" {
		errs = append(errs, fmt.Errorf("timeline.start_date is required"))
	} else if !validDate(t.StartDate) {
		errs = append(errs, fmt.Errorf("timeline.start_date: invalid date %q (expected YYYY-MM-DD)", t.StartDate))
	}
	if t.EndDate == "" {
		errs = append(errs, fmt.Errorf("timeline.end_date is required"))
	} else if !validDate(t.EndDate) {
		errs = append(errs, fmt.Errorf("timeline.end_date: invalid date %q (expected YYYY-MM-DD)", t.EndDate))
	}
	if validDate(t.StartDate) && validDate(t.EndDate) {
		start, _ := time.Parse("2006-01-02", t.StartDate)
		end, _ := time.Parse("2006-01-02", t.EndDate)
		if end.Before(start) {
			errs = append(errs, fmt.Errorf("timeline.end_date %q is before start_date %q", t.EndDate, t.StartDate))
		}
	}
	if !validTimeScales[t.TimeScale] {
		errs = append(errs, fmt.Errorf("timeline.time_scale %q must be day or week", t.TimeScale))
	}
	if t.WeekStartsOn != nil && *t.WeekStartsOn != 0 && *t.WeekStartsOn != 1 {
		errs = append(errs, fmt.Errorf("timeline.week_starts_on must be 0 (Sunday) or 1 (Monday)"))
	}

	return errs
}

func validateCalendar(c *CalendarImport) []error {
	if c == nil {
		return nil
	}
	var errs []error

	for _, wd := range c.ExcludeWeekdays {
		if wd < 0 || wd > 6 {
			errs = append(errs, fmt.Errorf("calendar.exclude_weekdays: %d is not a weekday (0-6)", wd))
		}
	}
	for _, d := range c.IncludeDates {
		if !validDate(d) {
			errs = append(errs, fmt.Errorf("calendar.include_dates: invalid date %q", d))
		}
	}
	for _, d := range c.ExcludeDates {
		if !validDate(d) {
			errs = append(errs, fmt.Errorf("calendar.exclude_dates: invalid date %q", d))
		}
	}

	return errs
}

func validateProject(i int, p *ProjectImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("projects[%d].name is required", i))
	}
	if !validLayouts[p.Layout] {
		errs = append(errs, fmt.Errorf("projects[%d].layout %q must be inline or multiline", i, p.Layout))
	}
	for j, s := range p.Stages {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d].stages[%d].name is required", i, j))
		}
		if !validDate(s.Start) {
			errs = append(errs, fmt.Errorf("projects[%d].stages[%d].start: invalid date %q", i, j, s.Start))
		}
		if s.Duration < 1 {
			errs = append(errs, fmt.Errorf("projects[%d].stages[%d].duration must be at least 1, got %d", i, j, s.Duration))
		}
		if s.Color != "" && !hexColor.MatchString(s.Color) {
			errs = append(errs, fmt.Errorf("projects[%d].stages[%d].color %q must be a 6-digit hex code", i, j, s.Color))
		}
	}
	for j, m := range p.Milestones {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d].milestones[%d].name is required", i, j))
		}
		if !validDate(m.Date) {
			errs = append(errs, fmt.Errorf("projects[%d].milestones[%d].date: invalid date %q", i, j, m.Date))
		}
		if m.Color != "" && !hexColor.MatchString(m.Color) {
			errs = append(errs, fmt.Errorf("projects[%d].milestones[%d].color %q must be a 6-digit hex code", i, j, m.Color))
		}
	}

	return errs
}

func validateSprint(i int, s SprintImport) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("sprints[%d].name is required", i))
	}
	if !validDate(s.Start) {
		errs = append(errs, fmt.Errorf("sprints[%d].start: invalid date %q", i, s.Start))
	}
	if !validDate(s.End) {
		errs = append(errs, fmt.Errorf("sprints[%d].end: invalid date %q", i, s.End))
	}
	if validDate(s.Start) && validDate(s.End) {
		start, _ := time.Parse("2006-01-02", s.Start)
		end, _ := time.Parse("2006-01-02", s.End)
		if end.Before(start) {
			errs = append(errs, fmt.Errorf("sprints[%d]: end %q is before start %q", i, s.End, s.Start))
		}
	}

	return errs
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
