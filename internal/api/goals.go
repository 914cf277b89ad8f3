package api

import (
	"context"
	"net/http"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// TodayGoals returns all of today's goals, completed ones included.
func (c *Client) TodayGoals(ctx context.Context) ([]domain.Goal, error) {
	var out []domain.Goal
	if err := c.do(ctx, get("/api/goals/today"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveTodayGoals returns today's incomplete goals.
func (c *Client) ActiveTodayGoals(ctx context.Context) ([]domain.Goal, error) {
	var out []domain.Goal
	if err := c.do(ctx, get("/api/goals/today/active"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGoal submits a new goal and returns it with its server-assigned id.
func (c *Client) CreateGoal(ctx context.Context, g domain.NewGoal) (*domain.Goal, error) {
	if err := c.validator.Struct(g); err != nil {
		return nil, err
	}
	var out domain.Goal
	req := request{method: http.MethodPost, path: "/api/goals", body: g, auth: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteGoals marks the given goals completed in one batch.
func (c *Client) CompleteGoals(ctx context.Context, ids []int64) error {
	body := domain.CompleteGoalsRequest{CompletedGoalIDs: ids}
	if err := c.validator.Struct(body); err != nil {
		return err
	}
	req := request{method: http.MethodPost, path: "/api/goals/complete", body: body, auth: true}
	return c.do(ctx, req, nil)
}
