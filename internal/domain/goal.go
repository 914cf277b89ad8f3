package domain

import "time"

// Goal is a daily learning task with an hour allocation.
type Goal struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	AllocatedHours   float64      `json:"allocatedHours"`
	ResourceType     ResourceType `json:"resourceType"`
	ResourceURL      string       `json:"resourceUrl,omitempty"`
	EnrolledCourseID *int64       `json:"enrolledCourseId,omitempty"`
	IsCompleted      bool         `json:"isCompleted"`
	CompletedAt      *time.Time   `json:"completedAt,omitempty"`
}

// NewGoal is the body of POST /api/goals. The server assigns the id.
type NewGoal struct {
	Title            string       `json:"title" validate:"required,max=200"`
	Description      string       `json:"description,omitempty" validate:"max=2000"`
	AllocatedHours   float64      `json:"allocatedHours" validate:"gt=0,lte=24"`
	ResourceType     ResourceType `json:"resourceType" validate:"required,oneof=DOCUMENTATION COURSE VIDEO ARTICLE OTHER"`
	ResourceURL      string       `json:"resourceUrl,omitempty" validate:"omitempty,url"`
	EnrolledCourseID *int64       `json:"enrolledCourseId,omitempty" validate:"omitempty,gt=0"`
}

// CompleteGoalsRequest is the body of POST /api/goals/complete.
type CompleteGoalsRequest struct {
	CompletedGoalIDs []int64 `json:"completedGoalIds" validate:"required,min=1,dive,gt=0"`
}

// GoalIDs returns the ids of goals in order.
func GoalIDs(goals []Goal) []int64 {
	ids := make([]int64, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return ids
}

// TotalHours sums allocated hours across goals.
func TotalHours(goals []Goal) float64 {
	var total float64
	for _, g := range goals {
		total += g.AllocatedHours
	}
	return total
}
