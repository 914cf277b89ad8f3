package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// GoalCheck returns the completion glyph for a goal.
func GoalCheck(g domain.Goal) string {
	if g.IsCompleted {
		return StyleGreen.Render("✔")
	}
	return StyleBlue.Render("○")
}

// FormatGoals renders today's goals as a table with a completion summary.
func FormatGoals(title string, goals []domain.Goal) string {
	if len(goals) == 0 {
		return RenderBox(title, Dim("No goals for today."))
	}

	rows := make([][]string, 0, len(goals))
	done := 0
	for _, g := range goals {
		if g.IsCompleted {
			done++
		}
		name := StyleFg.Render(g.Title)
		if g.IsCompleted {
			name = Dim(g.Title)
		}
		course := Dim("--")
		if g.EnrolledCourseID != nil {
			course = strconv.FormatInt(*g.EnrolledCourseID, 10)
		}
		rows = append(rows, []string{
			Dim(strconv.FormatInt(g.ID, 10)),
			GoalCheck(g),
			name,
			FormatHours(g.AllocatedHours),
			ResourceBadge(g.ResourceType),
			course,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "", "TITLE", "HOURS", "RESOURCE", "COURSE"}, rows))
	b.WriteString("\n")
	b.WriteString(GoalSummary(goals, done))
	return RenderBox(title, b.String())
}

// GoalSummary renders "done/total completed · N planned".
func GoalSummary(goals []domain.Goal, done int) string {
	return fmt.Sprintf("%s %s %s",
		StyleGreen.Render(fmt.Sprintf("%d/%d completed", done, len(goals))),
		Dim("·"),
		Dim(FormatHours(domain.TotalHours(goals))+" planned"))
}

// FormatCompleted confirms a completion batch.
func FormatCompleted(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	noun := "goals"
	if len(ids) == 1 {
		noun = "goal"
	}
	return StyleGreen.Render(fmt.Sprintf("✔ Completed %d %s", len(ids), noun)) +
		Dim(" ("+strings.Join(parts, ", ")+")") + "\n"
}

// FormatCompletionFailure renders the prominent notice shown when a
// completion batch is rejected.
func FormatCompletionFailure(err error) string {
	return RenderErrorBox("Goal completion failed",
		StyleRed.Render(err.Error())+"\n\n"+Dim("Your goals were reloaded from the server."))
}
