package codec

import (
	"sort"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
)

// Wire shapes for the transport JSON. Dates travel as local YYYY-MM-DD
// strings; fields at their default value are omitted and reinstated on
// decode. The stage/milestone "type" field only ever echoed the name, so
// it is dropped on encode and re-derived from the name on decode.

type wireAssignee struct {
	Name string `json:"name"`
}

type wireStage struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type,omitempty"`
	Start    string        `json:"start"`
	Duration int           `json:"duration"`
	Color    string        `json:"color,omitempty"`
	Assignee *wireAssignee `json:"assignee,omitempty"`
}

type wireMilestone struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type,omitempty"`
	Date     string        `json:"date"`
	Color    string        `json:"color,omitempty"`
	Assignee *wireAssignee `json:"assignee,omitempty"`
}

type wireProject struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Assignee   *wireAssignee   `json:"assignee,omitempty"`
	Stages     []wireStage     `json:"stages,omitempty"`
	Milestones []wireMilestone `json:"milestones,omitempty"`
	Layout     string          `json:"layout,omitempty"`
}

type wireSprint struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type wireCalendar struct {
	ExcludeWeekdays []int    `json:"excludeWeekdays,omitempty"`
	IncludeDates    []string `json:"includeDates,omitempty"`
	ExcludeDates    []string `json:"excludeDates,omitempty"`
}

type wireTimeline struct {
	Projects      []wireProject `json:"projects,omitempty"`
	Sprints       []wireSprint  `json:"sprints,omitempty"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Calendar      *wireCalendar `json:"calendar,omitempty"`
	TimeScale     string        `json:"timeScale,omitempty"`
	WeekStartsOn  *int          `json:"weekStartsOn,omitempty"`
	ShowTodayLine *bool         `json:"showTodayLine,omitempty"`
}

func toWire(t *domain.Timeline) wireTimeline {
	w := wireTimeline{
		StartDate: domain.FormatDate(t.StartDate),
		EndDate:   domain.FormatDate(t.EndDate),
	}

	for _, p := range t.Projects {
		wp := wireProject{
			ID:       p.ID,
			Name:     p.Name,
			Assignee: assigneeToWire(p.Assignee),
		}
		if p.Layout != domain.LayoutInline && p.Layout != "" {
			wp.Layout = string(p.Layout)
		}
		for _, s := range p.Stages {
			wp.Stages = append(wp.Stages, wireStage{
				ID:       s.ID,
				Name:     s.Name,
				Start:    domain.FormatDate(s.Start),
				Duration: s.Duration,
				Color:    s.Color,
				Assignee: assigneeToWire(s.Assignee),
			})
		}
		for _, m := range p.Milestones {
			wp.Milestones = append(wp.Milestones, wireMilestone{
				ID:       m.ID,
				Name:     m.Name,
				Date:     domain.FormatDate(m.Date),
				Color:    m.Color,
				Assignee: assigneeToWire(m.Assignee),
			})
		}
		w.Projects = append(w.Projects, wp)
	}

	for _, s := range t.Sprints {
		w.Sprints = append(w.Sprints, wireSprint{
			ID:    s.ID,
			Name:  s.Name,
			Start: domain.FormatDate(s.Start),
			End:   domain.FormatDate(s.End),
		})
	}

	if !t.Calendar.IsDefault() {
		w.Calendar = calendarToWire(t.Calendar)
	}
	if t.TimeScale != domain.ScaleDay && t.TimeScale != "" {
		w.TimeScale = string(t.TimeScale)
	}
	if t.WeekStartsOn != time.Monday {
		v := int(t.WeekStartsOn)
		w.WeekStartsOn = &v
	}
	if !t.ShowTodayLine {
		v := false
		w.ShowTodayLine = &v
	}
	return w
}

func assigneeToWire(a *domain.Assignee) *wireAssignee {
	if a == nil || a.Name == "" {
		return nil
	}
	return &wireAssignee{Name: a.Name}
}

func calendarToWire(c domain.CalendarConfig) *wireCalendar {
	w := &wireCalendar{}
	for wd := range c.ExcludeWeekdays {
		w.ExcludeWeekdays = append(w.ExcludeWeekdays, int(wd))
	}
	sort.Ints(w.ExcludeWeekdays)
	w.IncludeDates = sortedKeys(c.IncludeDates)
	w.ExcludeDates = sortedKeys(c.ExcludeDates)
	return w
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fromWire rebuilds the domain model, reinstating defaults for omitted
// fields and dropping entities whose dates fail to parse.
func fromWire(w wireTimeline) (*domain.Timeline, error) {
	start, err := domain.ParseDate(w.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(w.EndDate)
	if err != nil {
		return nil, err
	}

	t := &domain.Timeline{
		Projects:      []*domain.Project{},
		Sprints:       []*domain.Sprint{},
		StartDate:     start,
		EndDate:       end,
		Calendar:      domain.DefaultCalendarConfig(),
		TimeScale:     domain.ScaleDay,
		WeekStartsOn:  time.Monday,
		ShowTodayLine: true,
	}

	if w.Calendar != nil {
		t.Calendar = calendarFromWire(*w.Calendar)
	}
	if domain.ValidTimeScales[w.TimeScale] {
		t.TimeScale = domain.TimeScale(w.TimeScale)
	}
	if w.WeekStartsOn != nil && (*w.WeekStartsOn == 0 || *w.WeekStartsOn == 1) {
		t.WeekStartsOn = time.Weekday(*w.WeekStartsOn)
	}
	if w.ShowTodayLine != nil {
		t.ShowTodayLine = *w.ShowTodayLine
	}

	for _, wp := range w.Projects {
		p := &domain.Project{
			ID:         wp.ID,
			Name:       wp.Name,
			Assignee:   assigneeFromWire(wp.Assignee),
			Stages:     []*domain.Stage{},
			Milestones: []*domain.Milestone{},
			Layout:     domain.LayoutInline,
		}
		if domain.ValidProjectLayouts[wp.Layout] {
			p.Layout = domain.ProjectLayout(wp.Layout)
		}
		for _, ws := range wp.Stages {
			d, err := domain.ParseDate(ws.Start)
			if err != nil {
				continue
			}
			dur := ws.Duration
			if dur < 1 {
				dur = 1
			}
			p.Stages = append(p.Stages, &domain.Stage{
				ID:       ws.ID,
				Name:     ws.Name,
				Start:    d,
				Duration: dur,
				Color:    ws.Color,
				Assignee: assigneeFromWire(ws.Assignee),
			})
		}
		for _, wm := range wp.Milestones {
			d, err := domain.ParseDate(wm.Date)
			if err != nil {
				continue
			}
			p.Milestones = append(p.Milestones, &domain.Milestone{
				ID:       wm.ID,
				Name:     wm.Name,
				Date:     d,
				Color:    wm.Color,
				Assignee: assigneeFromWire(wm.Assignee),
			})
		}
		t.Projects = append(t.Projects, p)
	}

	for _, ws := range w.Sprints {
		s, err := domain.ParseDate(ws.Start)
		if err != nil {
			continue
		}
		e, err := domain.ParseDate(ws.End)
		if err != nil {
			continue
		}
		t.Sprints = append(t.Sprints, &domain.Sprint{
			ID:    ws.ID,
			Name:  ws.Name,
			Start: s,
			End:   e,
		})
	}

	return t, nil
}

func assigneeFromWire(a *wireAssignee) *domain.Assignee {
	if a == nil || a.Name == "" {
		return nil
	}
	return &domain.Assignee{Name: a.Name}
}

func calendarFromWire(w wireCalendar) domain.CalendarConfig {
	c := domain.CalendarConfig{
		ExcludeWeekdays: map[time.Weekday]bool{},
		IncludeDates:    map[string]bool{},
		ExcludeDates:    map[string]bool{},
	}
	for _, wd := range w.ExcludeWeekdays {
		if wd >= 0 && wd <= 6 {
			c.ExcludeWeekdays[time.Weekday(wd)] = true
		}
	}
	for _, d := range w.IncludeDates {
		c.IncludeDates[d] = true
	}
	for _, d := range w.ExcludeDates {
		c.ExcludeDates[d] = true
	}
	return c
}
