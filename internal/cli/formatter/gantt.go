package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/geometry"
)

// span is one renderable segment on a chart row, positioned in cells.
type span struct {
	col   int
	width int
	text  string
	style lipgloss.Style
}

// RenderGantt renders the timeline as a text chart. One column is one
// working unit of the axis, so non-working days collapse exactly as they
// do on the graphical chart.
func RenderGantt(t *domain.Timeline, today time.Time) string {
	m := geometry.Mapper{
		Start:        domain.DayOf(t.StartDate),
		CellWidth:    1,
		Calendar:     t.Calendar,
		Scale:        t.TimeScale,
		WeekStartsOn: t.WeekStartsOn,
	}
	_, max := m.Limits(t.EndDate)
	width := int(max)
	if width < 1 {
		width = 1
	}

	labelWidth := chartLabelWidth(t)

	var b strings.Builder
	b.WriteString(renderRuler(t, m, labelWidth, width, today))
	b.WriteString("\n")

	for _, sp := range t.Sprints {
		b.WriteString(renderSprintBand(sp, m, labelWidth, width))
		b.WriteString("\n")
	}

	for _, p := range t.Projects {
		if p.Layout == domain.LayoutMultiline {
			b.WriteString(padLabel(Bold(p.Name), labelWidth))
			b.WriteString("\n")
			for _, s := range p.Stages {
				b.WriteString(padLabel(Dim("  "+s.Name), labelWidth))
				b.WriteString(renderSpans(stageSpans([]*domain.Stage{s}, m), width))
				b.WriteString("\n")
			}
			if len(p.Milestones) > 0 {
				b.WriteString(padLabel("", labelWidth))
				b.WriteString(renderSpans(milestoneSpans(p.Milestones, m), width))
				b.WriteString("\n")
			}
			continue
		}

		spans := stageSpans(p.Stages, m)
		spans = append(spans, milestoneSpans(p.Milestones, m)...)
		b.WriteString(padLabel(Bold(p.Name), labelWidth))
		b.WriteString(renderSpans(spans, width))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func chartLabelWidth(t *domain.Timeline) int {
	width := 8
	for _, p := range t.Projects {
		if n := len(p.Name); n > width {
			width = n
		}
		if p.Layout == domain.LayoutMultiline {
			for _, s := range p.Stages {
				if n := len(s.Name) + 2; n > width {
					width = n
				}
			}
		}
	}
	for _, sp := range t.Sprints {
		if n := len(sp.Name); n > width {
			width = n
		}
	}
	return width + 2
}

func padLabel(label string, width int) string {
	pad := width - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return label + strings.Repeat(" ", pad)
}

// renderRuler draws the axis row: window boundary dates plus a tick line
// with the today marker.
func renderRuler(t *domain.Timeline, m geometry.Mapper, labelWidth, width int, today time.Time) string {
	ticks := make([]rune, width)
	for i := range ticks {
		if i%5 == 0 {
			ticks[i] = '┼'
		} else {
			ticks[i] = '─'
		}
	}
	if t.ShowTodayLine && t.ContainsDay(today) {
		col := int(m.DateToPosition(today))
		if col >= 0 && col < width {
			ticks[col] = '▼'
		}
	}

	dates := fmt.Sprintf("%s%s",
		padLabel("", labelWidth),
		Dim(domain.FormatDate(t.StartDate)+" → "+domain.FormatDate(t.EndDate)))
	return dates + "\n" + padLabel("", labelWidth) + Dim(string(ticks))
}

func renderSprintBand(sp *domain.Sprint, m geometry.Mapper, labelWidth, width int) string {
	start := int(m.DateToPosition(sp.Start))
	end := int(m.DateToPosition(sp.End))
	if end < start {
		end = start
	}
	band := []span{{col: start, width: end - start + 1, style: StyleYellow}}
	return padLabel(Dim(sp.Name), labelWidth) + renderSpans(band, width)
}

func stageSpans(stages []*domain.Stage, m geometry.Mapper) []span {
	spans := make([]span, 0, len(stages))
	for _, s := range stages {
		w := int(geometry.WidthFromDuration(s.Duration, m.CellWidth))
		if m.Scale == domain.ScaleWeek {
			end := int(m.DateToPosition(s.LastDay()))
			w = end - int(m.DateToPosition(s.Start)) + 1
		}
		spans = append(spans, span{
			col:   int(m.DateToPosition(s.Start)),
			width: w,
			style: StageStyle(s.Color),
		})
	}
	return spans
}

func milestoneSpans(milestones []*domain.Milestone, m geometry.Mapper) []span {
	spans := make([]span, 0, len(milestones))
	for _, ms := range milestones {
		spans = append(spans, span{
			col:   int(m.DateToPosition(ms.Date)),
			width: 1,
			text:  "◆",
			style: StylePurple,
		})
	}
	return spans
}

// renderSpans lays spans onto one chart row. Spans are clipped to the row
// and later spans start no earlier than the previous one ended.
func renderSpans(spans []span, width int) string {
	sort.Slice(spans, func(i, j int) bool { return spans[i].col < spans[j].col })

	var b strings.Builder
	cursor := 0
	for _, sp := range spans {
		col, w := sp.col, sp.width
		if col < cursor {
			w -= cursor - col
			col = cursor
		}
		if col >= width || w < 1 {
			continue
		}
		if col+w > width {
			w = width - col
		}
		b.WriteString(strings.Repeat(" ", col-cursor))
		b.WriteString(sp.style.Render(barText(sp.text, w)))
		cursor = col + w
	}
	return b.String()
}

// barText fills w cells with the bar glyph, overlaying text when it fits.
func barText(text string, w int) string {
	if text == "" {
		return strings.Repeat("█", w)
	}
	runes := []rune(text)
	if len(runes) >= w {
		return string(runes[:w])
	}
	return string(runes) + strings.Repeat("─", w-len(runes))
}
