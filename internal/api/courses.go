package api

import (
	"context"
	"net/http"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func (c *Client) EnrolledCourses(ctx context.Context) ([]domain.EnrolledCourse, error) {
	var out []domain.EnrolledCourse
	if err := c.do(ctx, get("/api/enrolled-courses"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProgress records progress and extra hours for an enrolled course.
func (c *Client) UpdateProgress(ctx context.Context, u domain.ProgressUpdate) (*domain.EnrolledCourse, error) {
	if err := c.validator.Struct(u); err != nil {
		return nil, err
	}
	var out domain.EnrolledCourse
	req := request{method: http.MethodPut, path: "/api/enrolled-courses/progress", body: u, auth: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CourseStats(ctx context.Context) (*domain.CourseStats, error) {
	var out domain.CourseStats
	if err := c.do(ctx, get("/api/enrolled-courses/stats"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TotalHoursThisWeek(ctx context.Context) (*domain.WeeklyHours, error) {
	var out domain.WeeklyHours
	if err := c.do(ctx, get("/api/enrolled-courses/total-hours-this-week"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HasAvailableTime(ctx context.Context) (*domain.Availability, error) {
	var out domain.Availability
	if err := c.do(ctx, get("/api/enrolled-courses/has-available-time"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrollExternal enrolls the user in a course hosted on another platform.
func (c *Client) EnrollExternal(ctx context.Context, e domain.ExternalEnrollment) (*domain.EnrolledCourse, error) {
	if err := c.validator.Struct(e); err != nil {
		return nil, err
	}
	var out domain.EnrolledCourse
	req := request{method: http.MethodPost, path: "/api/enrolled-courses/enroll-external", body: e, auth: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
