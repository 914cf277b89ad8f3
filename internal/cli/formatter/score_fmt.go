package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ScoreStyle colors a percentage: green from 80, yellow from 50, red below.
func ScoreStyle(pct float64) string {
	text := fmt.Sprintf("%.0f%%", pct)
	switch {
	case pct >= 80:
		return StyleGreen.Render(text)
	case pct >= 50:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// FormatScores renders recorded assessment scores.
func FormatScores(scores []domain.CourseScore) string {
	if len(scores) == 0 {
		return RenderBox("Scores", Dim("No scores recorded yet."))
	}
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		course := domain.CoalesceStr(s.CourseTitle, "#"+strconv.FormatInt(s.EnrolledCourseID, 10))
		when := Dim("--")
		if s.RecordedAt != nil {
			when = Dim(s.RecordedAt.Format("Jan 2, 2006"))
		}
		rows = append(rows, []string{
			Bold(course),
			domain.CoalesceStr(s.AssessmentName, "--"),
			fmt.Sprintf("%g/%g", s.Score, s.MaxScore),
			ScoreStyle(s.Percentage()),
			when,
		})
	}
	return RenderBox("Scores", RenderTable([]string{"COURSE", "ASSESSMENT", "SCORE", "PCT", "RECORDED"}, rows))
}
