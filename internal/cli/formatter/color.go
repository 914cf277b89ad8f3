package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// EventStyle returns the style used for a calendar event type.
func EventStyle(eventType string) lipgloss.Style {
	switch eventType {
	case domain.EventDeadline:
		return StyleRed
	case domain.EventCourseStart:
		return StyleBlue
	case domain.EventGoal:
		return StyleYellow
	case domain.EventCompleted:
		return StyleGreen
	default:
		return StylePurple
	}
}

// EventBadge returns a colored marker and label for an event type, such as "● DEADLINE".
func EventBadge(eventType string) string {
	label := strings.ReplaceAll(eventType, "_", " ")
	if label == "" {
		label = "EVENT"
	}
	return EventStyle(eventType).Render("● " + label)
}

// LevelStyle returns the style for a badge level.
func LevelStyle(level domain.BadgeLevel) lipgloss.Style {
	switch level {
	case domain.LevelMaster:
		return StyleHeader
	case domain.LevelExpert:
		return StylePurple
	case domain.LevelAdvanced:
		return StyleYellow
	case domain.LevelSkilled:
		return StyleGreen
	case domain.LevelApprentice:
		return StyleBlue
	default:
		return StyleDim
	}
}

// LevelBadge renders a level name in its color, e.g. "★ SKILLED".
func LevelBadge(level domain.BadgeLevel) string {
	if level == "" {
		return Dim("--")
	}
	return LevelStyle(level).Render("★ " + string(level))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
