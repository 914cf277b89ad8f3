package domain

import "time"

// CourseScore is an assessment result recorded against an enrolled course.
type CourseScore struct {
	ID               int64      `json:"id"`
	EnrolledCourseID int64      `json:"enrolledCourseId"`
	CourseTitle      string     `json:"courseTitle,omitempty"`
	AssessmentName   string     `json:"assessmentName,omitempty"`
	Score            float64    `json:"score"`
	MaxScore         float64    `json:"maxScore"`
	RecordedAt       *time.Time `json:"recordedAt,omitempty"`
}

// Percentage returns score/max as a percentage; 0 when max is not positive.
func (s CourseScore) Percentage() float64 {
	if s.MaxScore <= 0 {
		return 0
	}
	return s.Score / s.MaxScore * 100
}

// NewCourseScore is the body of POST /api/course-scores.
type NewCourseScore struct {
	EnrolledCourseID int64   `json:"enrolledCourseId" validate:"gt=0"`
	AssessmentName   string  `json:"assessmentName,omitempty" validate:"max=200"`
	Score            float64 `json:"score" validate:"gte=0,ltefield=MaxScore"`
	MaxScore         float64 `json:"maxScore" validate:"gt=0"`
}
