package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/reports"
)

const skillBarWidth = 12

// FormatInsights renders the quick-insights summary.
func FormatInsights(in *domain.QuickInsights) string {
	body := RenderKV([][2]string{
		{"Hours this week", Bold(FormatHours(in.HoursThisWeek))},
		{"Goals this week", strconv.Itoa(in.GoalsCompletedThisWeek)},
		{"Streak", fmt.Sprintf("%d days", in.CurrentStreak)},
		{"Top skill", domain.CoalesceStr(in.TopSkill, "--")},
	})
	if in.Message != "" {
		body += "\n" + StyleGreen.Render(in.Message)
	}
	return RenderBox("Insights", body)
}

// FormatReports renders every report in the bundle.
func FormatReports(b *reports.Bundle) string {
	sections := []string{FormatInsights(b.Insights)}

	o := b.Overview
	sections = append(sections, RenderBox("Overview", RenderKV([][2]string{
		{"Courses", fmt.Sprintf("%d (%d completed)", o.TotalCourses, o.CompletedCourses)},
		{"Hours", FormatHours(o.TotalHours)},
		{"Goals", fmt.Sprintf("%d/%d", o.CompletedGoals, o.TotalGoals)},
		{"Completion", RenderProgress(o.GoalCompletionRate/100, skillBarWidth)},
		{"Avg score", ScoreStyle(o.AverageCourseScore)},
		{"Points", StyleYellow.Render(strconv.Itoa(o.TotalPoints))},
	})))

	sections = append(sections, formatSkills(b.Skills))
	sections = append(sections, formatTimeManagement(b.TimeManagement))

	c := b.Consistency
	sections = append(sections, RenderBox("Consistency", RenderKV([][2]string{
		{"Streak", fmt.Sprintf("%d days (best %d)", c.CurrentStreak, c.LongestStreak)},
		{"Active days", fmt.Sprintf("%d of last 30", c.ActiveDaysLast30)},
		{"Score", RenderProgress(c.ConsistencyScore/100, skillBarWidth)},
	})))

	cp := b.Competitive
	sections = append(sections, RenderBox("Competitive", RenderKV([][2]string{
		{"Rank", fmt.Sprintf("#%d of %d", cp.Rank, cp.TotalUsers)},
		{"Percentile", fmt.Sprintf("%.0f", cp.Percentile)},
		{"Next rank", fmt.Sprintf("%d pts away", cp.PointsToNextRank)},
	})))

	return strings.Join(sections, "\n") + "\n"
}

func formatSkills(s *domain.SkillsReport) string {
	if s == nil || len(s.Skills) == 0 {
		return RenderBox("Skills", Dim("No skill data yet."))
	}
	rows := make([][]string, 0, len(s.Skills))
	for _, sk := range s.Skills {
		rows = append(rows, []string{
			Bold(sk.Name),
			FormatHours(sk.Hours),
			strconv.Itoa(sk.Courses),
			RenderProgress(sk.Proficiency/100, skillBarWidth),
		})
	}
	return RenderBox("Skills", RenderTable([]string{"SKILL", "HOURS", "COURSES", "PROFICIENCY"}, rows))
}

func formatTimeManagement(t *domain.TimeManagementReport) string {
	var b strings.Builder
	b.WriteString(RenderKV([][2]string{
		{"Daily avg", FormatHours(t.AverageDailyHours)},
		{"Planned", FormatHours(t.PlannedHours)},
		{"Actual", FormatHours(t.ActualHours)},
	}))
	peak := 0.0
	for _, d := range t.DailyHours {
		peak = max(peak, d.Hours)
	}
	if peak > 0 {
		b.WriteString("\n")
		for _, d := range t.DailyHours {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Dim(d.Date), RenderCompactBar(d.Hours/peak, skillBarWidth, false), FormatHours(d.Hours)))
		}
	}
	return RenderBox("Time management", b.String())
}
