package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
)

const courseProgressBarWidth = 10

// FormatCourses renders the enrolled course list.
func FormatCourses(courses []domain.EnrolledCourse, now time.Time) string {
	if len(courses) == 0 {
		return RenderBox("Courses", Dim("Not enrolled in any courses."))
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(c.ID, 10)),
			Bold(Truncate(c.CourseTitle, 40)),
			Dim(domain.CoalesceStr(c.Platform, "--")),
			CourseStatusPill(c.Status),
			RenderProgress(c.ProgressPercentage/100, courseProgressBarWidth),
			FormatHours(c.HoursSpent),
			FormatHours(c.WeeklyHours) + Dim("/wk"),
			DueDateStyled(c.TargetCompletionDate, now),
		})
	}
	table := RenderTable([]string{"ID", "COURSE", "PLATFORM", "STATUS", "PROGRESS", "SPENT", "PLAN", "DUE"}, rows)
	return RenderBox("Courses", table)
}

// FormatCourseStats renders aggregate course statistics.
func FormatCourseStats(s *domain.CourseStats) string {
	body := RenderKV([][2]string{
		{"Courses", strconv.Itoa(s.TotalCourses)},
		{"In progress", StyleGreen.Render(strconv.Itoa(s.InProgress))},
		{"Completed", strconv.Itoa(s.Completed)},
		{"Not started", StyleBlue.Render(strconv.Itoa(s.NotStarted))},
		{"Hours spent", FormatHours(s.TotalHoursSpent)},
		{"Avg progress", RenderProgress(s.AverageProgress/100, courseProgressBarWidth)},
		{"Weekly plan", FormatHours(s.PlannedWeeklyLoad)},
	})
	return RenderBox("Course stats", body)
}

// FormatWeeklyHours renders this week's study hours against the limit.
// avail may be nil.
func FormatWeeklyHours(w *domain.WeeklyHours, avail *domain.Availability) string {
	var b strings.Builder
	b.WriteString(WeeklyHoursLine(w, 20) + "\n")
	if avail != nil {
		if avail.HasAvailableTime {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("%s available this week", FormatHours(avail.RemainingHours))) + "\n")
		} else {
			b.WriteString(StyleRed.Render("Weekly limit reached") + "\n")
		}
	}
	return RenderBox("This week", b.String())
}

// WeeklyHoursLine renders "12h / 20h [bar] 60%".
func WeeklyHoursLine(w *domain.WeeklyHours, width int) string {
	if w == nil {
		return Dim("weekly hours unavailable")
	}
	if w.WeeklyLimit <= 0 {
		return fmt.Sprintf("%s %s", Bold(FormatHours(w.TotalHours)), Dim("(no weekly limit)"))
	}
	return fmt.Sprintf("%s / %s %s",
		Bold(FormatHours(w.TotalHours)),
		FormatHours(w.WeeklyLimit),
		RenderLoadBar(w.UsedFraction(), width))
}

// FormatProgressUpdated confirms a progress update.
func FormatProgressUpdated(c *domain.EnrolledCourse) string {
	return StyleGreen.Render("✔ Progress saved") + " " +
		Bold(c.CourseTitle) + " " +
		RenderProgress(c.ProgressPercentage/100, courseProgressBarWidth) + " " +
		Dim(FormatHours(c.HoursSpent)+" spent") + "\n"
}
