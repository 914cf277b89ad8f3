package api

import (
	"context"
	"net/http"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func (c *Client) UserScores(ctx context.Context) ([]domain.CourseScore, error) {
	var out []domain.CourseScore
	if err := c.do(ctx, get("/api/course-scores/user-scores"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddScore(ctx context.Context, s domain.NewCourseScore) (*domain.CourseScore, error) {
	if err := c.validator.Struct(s); err != nil {
		return nil, err
	}
	var out domain.CourseScore
	req := request{method: http.MethodPost, path: "/api/course-scores", body: s, auth: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
