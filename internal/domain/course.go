package domain

import "time"

// EnrolledCourse is a course instance the user has joined.
type EnrolledCourse struct {
	ID                   int64        `json:"id"`
	CourseTitle          string       `json:"courseTitle"`
	Platform             string       `json:"platform,omitempty"`
	CourseURL            string       `json:"courseUrl,omitempty"`
	Status               CourseStatus `json:"status"`
	ProgressPercentage   float64      `json:"progressPercentage"`
	HoursSpent           float64      `json:"hoursSpent"`
	WeeklyHours          float64      `json:"weeklyHours"`
	StartDate            string       `json:"startDate,omitempty"`
	TargetCompletionDate string       `json:"targetCompletionDate,omitempty"`
	EnrolledAt           *time.Time   `json:"enrolledAt,omitempty"`
}

// ProgressUpdate is the body of PUT /api/enrolled-courses/progress.
type ProgressUpdate struct {
	EnrolledCourseID     int64   `json:"enrolledCourseId" validate:"gt=0"`
	ProgressPercentage   float64 `json:"progressPercentage" validate:"gte=0,lte=100"`
	AdditionalHoursSpent float64 `json:"additionalHoursSpent" validate:"gte=0,lte=24"`
}

// ExternalEnrollment is the body of POST /api/enrolled-courses/enroll-external.
type ExternalEnrollment struct {
	CourseTitle          string  `json:"courseTitle" validate:"required,max=200"`
	Platform             string  `json:"platform" validate:"required"`
	CourseURL            string  `json:"courseUrl,omitempty" validate:"omitempty,url"`
	WeeklyHours          float64 `json:"weeklyHours" validate:"gt=0,lte=80"`
	TargetCompletionDate string  `json:"targetCompletionDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CourseStats is the payload of GET /api/enrolled-courses/stats.
type CourseStats struct {
	TotalCourses      int     `json:"totalCourses"`
	InProgress        int     `json:"inProgress"`
	Completed         int     `json:"completed"`
	NotStarted        int     `json:"notStarted"`
	TotalHoursSpent   float64 `json:"totalHoursSpent"`
	AverageProgress   float64 `json:"averageProgress"`
	PlannedWeeklyLoad float64 `json:"plannedWeeklyHours"`
}

// WeeklyHours is the payload of GET /api/enrolled-courses/total-hours-this-week.
type WeeklyHours struct {
	TotalHours  float64 `json:"totalHours"`
	WeeklyLimit float64 `json:"weeklyLimit"`
}

// Remaining returns the hours left under the weekly limit, never negative.
func (w WeeklyHours) Remaining() float64 {
	if w.TotalHours >= w.WeeklyLimit {
		return 0
	}
	return w.WeeklyLimit - w.TotalHours
}

// UsedFraction returns total/limit clamped to [0,1]; 0 when no limit is set.
func (w WeeklyHours) UsedFraction() float64 {
	if w.WeeklyLimit <= 0 {
		return 0
	}
	f := w.TotalHours / w.WeeklyLimit
	if f > 1 {
		return 1
	}
	return f
}

// Availability is the payload of GET /api/enrolled-courses/has-available-time.
type Availability struct {
	HasAvailableTime bool    `json:"hasAvailableTime"`
	RemainingHours   float64 `json:"remainingHours"`
}
