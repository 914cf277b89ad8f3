package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(title, content, ColorDim, StyleHeader)
}

// RenderErrorBox renders a red-bordered box for failures the user must notice,
// such as a rejected goal completion.
func RenderErrorBox(title string, content string) string {
	return renderBox(title, content, ColorRed, lipgloss.NewStyle().Foreground(ColorRed).Bold(true))
}

func renderBox(title, content string, border lipgloss.Color, titleStyle lipgloss.Style) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := titleStyle.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueDateStyled renders an ISO target date relative to now with urgency coloring.
// Unparseable input is shown as-is; empty input as "--".
func DueDateStyled(iso string, now time.Time) string {
	if iso == "" {
		return Dim("--")
	}
	if len(iso) > len(domain.DateLayout) {
		iso = iso[:len(domain.DateLayout)]
	}
	t, err := domain.ParseDate(iso)
	if err != nil {
		return StyleFg.Render(iso)
	}
	text := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))
	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// FormatHours renders a fractional hour count: "45m", "2h", "1.5h".
func FormatHours(h float64) string {
	if h <= 0 {
		return "0h"
	}
	if h < 1 {
		return fmt.Sprintf("%dm", int(math.Round(h*60)))
	}
	if h == math.Trunc(h) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// CourseStatusPill returns a colored status indicator for an enrolled course.
func CourseStatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.CourseInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.CourseNotStarted:
		return StyleBlue.Render("○ Not Started")
	case domain.CoursePaused:
		return StyleYellow.Render("○ Paused")
	case domain.CourseCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.CourseDropped:
		return StyleDim.Render("✖ Dropped")
	default:
		return StyleDim.Render(string(status))
	}
}

// ResourceBadge returns a short purple label for a goal resource type.
func ResourceBadge(r domain.ResourceType) string {
	if r == "" {
		return StyleDim.Render("--")
	}
	s := strings.ToLower(string(r))
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// Truncate shortens s to at most n visible runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
