package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/geometry"
	"github.com/Chilos/project-gantt/internal/gesture"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view BLOCK",
		Short: "Open the interactive timeline viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the viewer requires a terminal")
			}

			ctx := context.Background()
			blockID, err := resolveBlockID(ctx, app, args[0])
			if err != nil {
				return err
			}
			model, err := app.Timelines.Load(ctx, blockID)
			if err != nil {
				return err
			}

			view := newTimelineView(app, blockID, model)
			_, err = tea.NewProgram(view).Run()
			return err
		},
	}
}

// chartItem is one selectable entity on the chart.
type chartItem struct {
	kind  gesture.TargetKind
	id    string
	label string
}

// savedMsg signals that a commit has been persisted.
type savedMsg struct{ err error }

// reloadedMsg signals that the model has been reloaded from storage.
type reloadedMsg struct {
	model *domain.Timeline
	err   error
}

// viewKeys are the viewer's key bindings.
type viewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Shrink  key.Binding
	Grow    key.Binding
	Commit  key.Binding
	Discard key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

var viewKeys = viewKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "select")),
	Left:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "move")),
	Right:   key.NewBinding(key.WithKeys("l")),
	Shrink:  key.NewBinding(key.WithKeys("H")),
	Grow:    key.NewBinding(key.WithKeys("L"), key.WithHelp("H/L", "resize")),
	Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
	Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// viewHelp joins the short help entries into one line.
func viewHelp() string {
	bindings := []key.Binding{
		viewKeys.Down, viewKeys.Left, viewKeys.Grow,
		viewKeys.Commit, viewKeys.Discard, viewKeys.Reload, viewKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// timelineView drives drag and resize gestures from the keyboard: h/l move
// the selected entity one cell, H/L resize the selected stage one cell,
// enter commits and esc discards.
type timelineView struct {
	app     *App
	blockID string
	model   *domain.Timeline
	engine  *gesture.Engine

	items   []chartItem
	cursor  int
	pointer float64

	status string
	err    error
}

func newTimelineView(app *App, blockID string, model *domain.Timeline) *timelineView {
	v := &timelineView{
		app:     app,
		blockID: blockID,
		model:   model,
		engine:  gesture.NewEngine(model),
	}
	v.rebuildItems()
	return v
}

func (v *timelineView) rebuildItems() {
	v.items = v.items[:0]
	for _, p := range v.model.Projects {
		for _, s := range p.Stages {
			v.items = append(v.items, chartItem{
				kind:  gesture.TargetStage,
				id:    s.ID,
				label: fmt.Sprintf("%s / %s", p.Name, s.Name),
			})
		}
		for _, m := range p.Milestones {
			v.items = append(v.items, chartItem{
				kind:  gesture.TargetMilestone,
				id:    m.ID,
				label: fmt.Sprintf("%s / ◆ %s", p.Name, m.Name),
			})
		}
	}
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *timelineView) Init() tea.Cmd { return nil }

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.status = "saved"
		v.rebuildItems()
		return v, nil

	case reloadedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.model = msg.model
		v.engine = gesture.NewEngine(msg.model)
		v.rebuildItems()
		v.status = "reloaded"
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *timelineView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, viewKeys.Quit):
		v.engine.Cancel()
		return v, tea.Quit

	case key.Matches(msg, viewKeys.Up):
		if v.engine.State() == gesture.StateIdle && v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, viewKeys.Down):
		if v.engine.State() == gesture.StateIdle && v.cursor < len(v.items)-1 {
			v.cursor++
		}

	case key.Matches(msg, viewKeys.Left):
		v.nudge(-1)
	case key.Matches(msg, viewKeys.Right):
		v.nudge(1)
	case key.Matches(msg, viewKeys.Shrink):
		v.stretch(-1)
	case key.Matches(msg, viewKeys.Grow):
		v.stretch(1)

	case key.Matches(msg, viewKeys.Commit):
		if v.engine.State() != gesture.StateIdle {
			if err := v.engine.End(v.model); err != nil {
				v.err = err
				return v, nil
			}
			return v, v.save()
		}

	case key.Matches(msg, viewKeys.Discard):
		if v.engine.State() != gesture.StateIdle {
			v.engine.Cancel()
			v.status = "discarded"
		}

	case key.Matches(msg, viewKeys.Reload):
		if v.engine.State() == gesture.StateIdle {
			return v, v.reload()
		}
	}
	return v, nil
}

// nudge starts a drag gesture when idle and moves the pointer by whole cells.
func (v *timelineView) nudge(cells int) {
	item, ok := v.selected()
	if !ok {
		return
	}
	if v.engine.State() == gesture.StateIdle {
		grab := v.grabPosition(item)
		if err := v.engine.BeginDrag(v.model, gesture.Target{Kind: item.kind, ID: item.id}, grab); err != nil {
			v.err = err
			return
		}
		v.pointer = grab
		v.status = "dragging"
	}
	if v.engine.State() != gesture.StateDragging {
		return
	}
	v.pointer += float64(cells) * v.engine.Mapper().CellWidth
	v.engine.Move(v.pointer)
}

// stretch starts a resize gesture when idle and moves the right edge by
// whole cells. Milestones have no width and cannot be resized.
func (v *timelineView) stretch(cells int) {
	item, ok := v.selected()
	if !ok || item.kind != gesture.TargetStage {
		return
	}
	if v.engine.State() == gesture.StateIdle {
		if err := v.engine.BeginResize(v.model, item.id); err != nil {
			v.err = err
			return
		}
		v.pointer = v.engine.VisualPosition() + v.engine.VisualWidth()
		v.status = "resizing"
	}
	if v.engine.State() != gesture.StateResizing {
		return
	}
	v.pointer += float64(cells) * v.engine.Mapper().CellWidth
	v.engine.Move(v.pointer)
}

func (v *timelineView) selected() (chartItem, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return chartItem{}, false
	}
	return v.items[v.cursor], true
}

func (v *timelineView) grabPosition(item chartItem) float64 {
	m := geometry.NewMapper(v.model)
	if item.kind == gesture.TargetMilestone {
		if _, ms := v.model.FindMilestone(item.id); ms != nil {
			return m.DateToPosition(ms.Date)
		}
		return 0
	}
	if _, s := v.model.FindStage(item.id); s != nil {
		return m.DateToPosition(s.Start)
	}
	return 0
}

func (v *timelineView) save() tea.Cmd {
	app, blockID, model := v.app, v.blockID, v.model
	return func() tea.Msg {
		return savedMsg{err: app.Timelines.Save(context.Background(), blockID, model)}
	}
}

func (v *timelineView) reload() tea.Cmd {
	app, blockID := v.app, v.blockID
	return func() tea.Msg {
		model, err := app.Timelines.Load(context.Background(), blockID)
		return reloadedMsg{model: model, err: err}
	}
}

func (v *timelineView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.RenderGantt(v.model, time.Now()))
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString("  " + formatter.Dim("No stages or milestones.") + "\n")
	}
	for i, item := range v.items {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(cursor + style.Render(item.label) + "\n")
	}

	b.WriteString("\n" + v.statusLine() + "\n")
	b.WriteString(formatter.Dim("  "+viewHelp()) + "\n")
	return b.String()
}

func (v *timelineView) statusLine() string {
	if v.err != nil {
		return "  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	state := v.engine.State()
	if state == gesture.StateIdle {
		if v.status != "" {
			return "  " + formatter.Dim(v.status)
		}
		return "  " + formatter.Dim("idle")
	}

	cell := v.engine.Mapper().CellWidth
	line := fmt.Sprintf("%s at cell %.0f", state, v.engine.VisualPosition()/cell)
	if state == gesture.StateResizing {
		line = fmt.Sprintf("%s to %d cells", state, int(v.engine.VisualWidth()/cell))
	}
	if v.engine.BoundaryHit() {
		line += "  " + formatter.StyleYellow.Render("▲ window edge")
	}
	return "  " + formatter.StyleGreen.Render(line)
}
