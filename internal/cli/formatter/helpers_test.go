package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestDueDateStyled(t *testing.T) {
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.Local)

	assert.Contains(t, stripANSI(DueDateStyled("", now)), "--")
	assert.Equal(t, "Tomorrow", stripANSI(DueDateStyled("2024-04-11", now)))
	assert.Equal(t, "In 5d", stripANSI(DueDateStyled("2024-04-15T00:00:00", now)))
	assert.Equal(t, "someday", stripANSI(DueDateStyled("someday", now)))
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0h"},
		{-1, "0h"},
		{0.75, "45m"},
		{1, "1h"},
		{2.5, "2.5h"},
		{12, "12h"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHours(tt.input))
		})
	}
}

func TestCourseStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.CourseStatus
		contains string
	}{
		{domain.CourseInProgress, "In Progress"},
		{domain.CourseNotStarted, "Not Started"},
		{domain.CoursePaused, "Paused"},
		{domain.CourseCompleted, "Completed"},
		{domain.CourseDropped, "Dropped"},
		{"ARCHIVED", "ARCHIVED"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, CourseStatusPill(tt.status), tt.contains)
		})
	}
}

func TestResourceBadge(t *testing.T) {
	assert.Contains(t, ResourceBadge(domain.ResourceVideo), "Video")
	assert.Contains(t, ResourceBadge(domain.ResourceDocumentation), "Documentation")
	assert.Contains(t, ResourceBadge(""), "--")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Distrib…", Truncate("Distributed Systems", 8))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestFormatCompletionFailure(t *testing.T) {
	out := stripANSI(FormatCompletionFailure(errors.New("server returned status 500")))
	assert.Contains(t, out, "GOAL COMPLETION FAILED")
	assert.Contains(t, out, "server returned status 500")
	assert.Contains(t, out, "reloaded")
}

func TestEventBadge(t *testing.T) {
	assert.Contains(t, EventBadge(domain.EventCourseStart), "COURSE START")
	assert.Contains(t, EventBadge(""), "EVENT")
}

func TestLevelBadge(t *testing.T) {
	assert.Contains(t, LevelBadge(domain.LevelExpert), "EXPERT")
	assert.Contains(t, LevelBadge(""), "--")
}
