package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type goalsLoadedMsg struct {
	err error
}

type goalsCompletedMsg struct {
	ids []int64
	err error
}

// goalsView lists today's goals and completes a multi-selection of the
// active ones in one batch.
type goalsView struct {
	state      *SharedState
	cursor     int
	loading    bool
	submitting bool
	err        error
	notice     string
}

func newGoalsView(state *SharedState) *goalsView {
	return &goalsView{state: state, loading: true}
}

func (v *goalsView) ID() ViewID    { return ViewGoals }
func (v *goalsView) Title() string { return "Goals" }

func (v *goalsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space", "select")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "complete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *goalsView) Init() tea.Cmd {
	return v.load()
}

func (v *goalsView) load() tea.Cmd {
	state := v.state
	return func() tea.Msg {
		return goalsLoadedMsg{err: state.Goals.Refresh(state.Ctx)}
	}
}

// complete applies the selection to the local lists before returning, so
// the next render already shows the goals as done. Only the server round
// trip runs in the returned command.
func (v *goalsView) complete() tea.Cmd {
	batch, err := v.state.Goals.Begin(goals.CompleteRequest{})
	if err != nil {
		v.err = err
		return nil
	}
	v.submitting = true
	v.err = nil
	v.notice = ""
	v.clampCursor()
	state := v.state
	return func() tea.Msg {
		err := state.Goals.Submit(state.Ctx, batch)
		return goalsCompletedMsg{ids: batch.IDs, err: err}
	}
}

func (v *goalsView) clampCursor() {
	n := len(v.state.Goals.Active())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *goalsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.clampCursor()
		return v, nil

	case goalsCompletedMsg:
		v.submitting = false
		v.clampCursor()
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.notice = formatter.FormatCompleted(msg.ids)
		return v, refreshAll

	case refreshViewMsg:
		// The reconciler is shared and already current after a completion.
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		active := v.state.Goals.Active()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(active)-1 {
				v.cursor++
			}
		case " ", "x":
			if v.cursor < len(active) {
				_ = v.state.Goals.Toggle(active[v.cursor].ID)
			}
		case "a":
			if err := v.state.Goals.Select(domain.GoalIDs(active)...); err != nil {
				v.err = err
			}
		case "enter", "c":
			return v, v.complete()
		case "r":
			v.loading = true
			v.err = nil
			v.notice = ""
			return v, v.load()
		}
	}
	return v, nil
}

func (v *goalsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	active := v.state.Goals.Active()
	b.WriteString(formatter.StyleHeader.Render("REMAINING") + "\n\n")
	if len(active) == 0 {
		b.WriteString("  " + formatter.StyleGreen.Render("All done for today.") + "\n")
	}
	for i, g := range active {
		cursor := "  "
		title := formatter.StyleFg.Render(g.Title)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(g.Title)
		}
		box := formatter.Dim("[ ]")
		if v.state.Goals.IsSelected(g.ID) {
			box = formatter.StyleGreen.Render("[x]")
		}
		b.WriteString(cursor + box + " " + title + " " +
			formatter.Dim(formatter.FormatHours(g.AllocatedHours)) + " " +
			formatter.ResourceBadge(g.ResourceType) + "\n")
	}

	var completed []domain.Goal
	all := v.state.Goals.AllToday()
	for _, g := range all {
		if g.IsCompleted {
			completed = append(completed, g)
		}
	}
	if len(completed) > 0 {
		b.WriteString("\n" + formatter.StyleHeader.Render("DONE") + "\n\n")
		for _, g := range completed {
			b.WriteString("  " + formatter.GoalCheck(g) + " " + formatter.Dim(g.Title) + "\n")
		}
	}
	if len(all) > 0 {
		b.WriteString("\n  " + formatter.GoalSummary(all, len(completed)) + "\n")
	}

	switch {
	case v.submitting:
		b.WriteString("\n  " + formatter.Dim("Saving...") + "\n")
	case errors.Is(v.err, goals.ErrCompletionFailed):
		b.WriteString("\n" + formatter.FormatCompletionFailure(v.err) + "\n")
	case v.err != nil:
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+ErrorMessage(v.err)) + "\n")
	case v.notice != "":
		b.WriteString("\n  " + v.notice)
	}
	return b.String()
}
