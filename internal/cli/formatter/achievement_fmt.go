package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/achievements"
	"github.com/alexanderramin/skillpath/internal/domain"
)

const levelBarWidth = 20

// LevelProgressLine renders the level badge and progress toward the next tier.
func LevelProgressLine(points int) string {
	level := achievements.LevelForPoints(points)
	next, ok := achievements.NextLevel(level)
	if !ok {
		return LevelBadge(level) + " " + Dim("max level")
	}
	return fmt.Sprintf("%s %s %s",
		LevelBadge(level),
		RenderProgress(achievements.ProgressToNext(points), levelBarWidth),
		Dim(fmt.Sprintf("%d pts to %s", achievements.PointsToNext(points), next)))
}

// FormatProfile renders the achievement profile.
func FormatProfile(p *domain.AchievementProfile) string {
	level := p.CurrentLevel
	if level == "" {
		level = achievements.LevelForPoints(p.TotalPoints)
	}
	rank := Dim("--")
	if p.Rank > 0 {
		rank = "#" + strconv.Itoa(p.Rank)
	}
	body := RenderKV([][2]string{
		{"User", Bold(p.Username)},
		{"Points", StyleYellow.Render(strconv.Itoa(p.TotalPoints))},
		{"Level", LevelBadge(level)},
		{"Rank", rank},
		{"Courses done", strconv.Itoa(p.CoursesCompleted)},
		{"Goals done", strconv.Itoa(p.GoalsCompleted)},
		{"Streak", fmt.Sprintf("%d days %s", p.CurrentStreak, Dim(fmt.Sprintf("(best %d)", p.LongestStreak)))},
	})
	return RenderBox("Achievements", body+"\n"+LevelProgressLine(p.TotalPoints))
}

// FormatBadges renders earned badges followed by locked ones.
func FormatBadges(earned, locked []domain.Badge) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Earned (%d)", len(earned))) + "\n")
	if len(earned) == 0 {
		b.WriteString(Dim("  None yet") + "\n")
	}
	for _, bd := range earned {
		when := ""
		if bd.EarnedAt != nil {
			when = Dim(" · " + bd.EarnedAt.Format("Jan 2, 2006"))
		}
		b.WriteString("  " + StyleGreen.Render("✔ ") + Bold(bd.Name) + " " + LevelBadge(bd.Level) + when + "\n")
		if bd.Description != "" {
			b.WriteString("    " + Dim(bd.Description) + "\n")
		}
	}
	b.WriteString("\n" + Header(fmt.Sprintf("Locked (%d)", len(locked))) + "\n")
	for _, bd := range locked {
		b.WriteString("  " + Dim("🔒 "+bd.Name) + " " + Dim(fmt.Sprintf("%d pts", bd.PointsRequired)) + "\n")
	}
	return RenderBox("Badges", b.String())
}

// FormatLeaderboard renders leaderboard entries, highlighting the row at
// highlight (use -1 for none).
func FormatLeaderboard(period domain.LeaderboardPeriod, entries []domain.LeaderboardEntry, highlight int) string {
	title := "Leaderboard · " + strings.ReplaceAll(string(period), "_", " ")
	if len(entries) == 0 {
		return RenderBox(title, Dim("No entries."))
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		name := e.Username
		if i == highlight {
			name = StyleHeader.Render("▶ " + name)
		}
		rows = append(rows, []string{
			"#" + strconv.Itoa(e.Rank),
			name,
			StyleYellow.Render(strconv.Itoa(e.TotalPoints)),
			LevelBadge(e.Level),
		})
	}
	return RenderBox(title, RenderTable([]string{"RANK", "USER", "POINTS", "LEVEL"}, rows))
}

// FormatPointsResult renders the outcome of a points recalculation.
func FormatPointsResult(r *domain.PointsResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("+%d points", r.PointsAwarded)) +
		Dim(fmt.Sprintf(" (total %d)", r.TotalPoints)) + "\n")
	for _, bd := range r.NewBadges {
		b.WriteString("  " + StyleYellow.Render("★ New badge: ") + Bold(bd.Name) + "\n")
	}
	b.WriteString(LevelProgressLine(r.TotalPoints) + "\n")
	return b.String()
}
