package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/repository"
)

// FormatTimelineSummary renders the window, axis settings and entity counts
// of one timeline.
func FormatTimelineSummary(t *domain.Timeline) string {
	var b strings.Builder

	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Window:     %s → %s\n",
		domain.FormatDate(t.StartDate), domain.FormatDate(t.EndDate)))
	b.WriteString(fmt.Sprintf("Scale:      %s\n", t.TimeScale))
	b.WriteString(fmt.Sprintf("Week start: %s\n", t.WeekStartsOn))

	todayLine := "off"
	if t.ShowTodayLine {
		todayLine = "on"
	}
	b.WriteString(fmt.Sprintf("Today line: %s\n", todayLine))

	stages, milestones := 0, 0
	for _, p := range t.Projects {
		stages += len(p.Stages)
		milestones += len(p.Milestones)
	}
	b.WriteString(Dim(fmt.Sprintf("%d projects, %d stages, %d milestones, %d sprints",
		len(t.Projects), stages, milestones, len(t.Sprints))))

	return b.String()
}

// FormatProjectList renders the projects of a timeline as a table.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		assignee := "-"
		if p.Assignee != nil {
			assignee = p.Assignee.Name
		}
		rows = append(rows, []string{
			Dim(shortID(p.ID)),
			Bold(p.Name),
			string(p.Layout),
			assignee,
			fmt.Sprintf("%d", len(p.Stages)),
			fmt.Sprintf("%d", len(p.Milestones)),
		})
	}
	return RenderTable([]string{"ID", "Name", "Layout", "Assignee", "Stages", "Milestones"}, rows)
}

// FormatStageList renders every stage of a timeline, grouped in project order.
func FormatStageList(t *domain.Timeline) string {
	var rows [][]string
	for _, p := range t.Projects {
		for _, s := range p.Stages {
			assignee := "-"
			if s.Assignee != nil {
				assignee = s.Assignee.Name
			}
			rows = append(rows, []string{
				Dim(shortID(s.ID)),
				p.Name,
				StageStyle(s.Color).Render(s.Name),
				domain.FormatDate(s.Start),
				domain.FormatDate(s.LastDay()),
				fmt.Sprintf("%dd", s.Duration),
				assignee,
			})
		}
	}
	return RenderTable([]string{"ID", "Project", "Stage", "Start", "End", "Duration", "Assignee"}, rows)
}

// FormatMilestoneList renders every milestone of a timeline.
func FormatMilestoneList(t *domain.Timeline) string {
	var rows [][]string
	for _, p := range t.Projects {
		for _, m := range p.Milestones {
			rows = append(rows, []string{
				Dim(shortID(m.ID)),
				p.Name,
				StylePurple.Render("◆ " + m.Name),
				domain.FormatDate(m.Date),
			})
		}
	}
	return RenderTable([]string{"ID", "Project", "Milestone", "Date"}, rows)
}

// FormatSprintList renders the sprint bands of a timeline.
func FormatSprintList(sprints []*domain.Sprint) string {
	rows := make([][]string, 0, len(sprints))
	for _, sp := range sprints {
		rows = append(rows, []string{
			Dim(shortID(sp.ID)),
			sp.Name,
			domain.FormatDate(sp.Start),
			domain.FormatDate(sp.End),
		})
	}
	return RenderTable([]string{"ID", "Sprint", "Start", "End"}, rows)
}

// FormatCalendar renders the working-day rules of a timeline.
func FormatCalendar(cfg domain.CalendarConfig) string {
	var b strings.Builder

	b.WriteString(Header("Calendar"))
	b.WriteString("\n")

	var weekdays []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if cfg.ExcludeWeekdays[wd] {
			weekdays = append(weekdays, wd.String())
		}
	}
	if len(weekdays) == 0 {
		weekdays = append(weekdays, "none")
	}
	b.WriteString(fmt.Sprintf("Excluded weekdays: %s\n", strings.Join(weekdays, ", ")))
	b.WriteString(fmt.Sprintf("Included dates:    %s\n", joinDates(cfg.IncludeDates)))
	b.WriteString(fmt.Sprintf("Excluded dates:    %s", joinDates(cfg.ExcludeDates)))

	return b.String()
}

// FormatBlockList renders the stored timeline blocks.
func FormatBlockList(blocks []*repository.Block) string {
	rows := make([][]string, 0, len(blocks))
	for _, blk := range blocks {
		rows = append(rows, []string{
			blk.ID,
			blk.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"Block", "Updated"}, rows)
}

func joinDates(set map[string]bool) string {
	if len(set) == 0 {
		return "none"
	}
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return strings.Join(dates, ", ")
}

// shortID trims a UUID to its first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
