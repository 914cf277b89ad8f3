package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyHours_Remaining(t *testing.T) {
	cases := []struct {
		total, limit, want float64
	}{
		{12, 20, 8},
		{20, 20, 0},
		{25, 20, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		w := WeeklyHours{TotalHours: tc.total, WeeklyLimit: tc.limit}
		assert.Equal(t, tc.want, w.Remaining(), "total=%v limit=%v", tc.total, tc.limit)
	}
}

func TestWeeklyHours_UsedFraction(t *testing.T) {
	assert.Equal(t, 0.5, WeeklyHours{TotalHours: 10, WeeklyLimit: 20}.UsedFraction())
	assert.Equal(t, 1.0, WeeklyHours{TotalHours: 30, WeeklyLimit: 20}.UsedFraction(), "clamped")
	assert.Equal(t, 0.0, WeeklyHours{TotalHours: 5}.UsedFraction(), "no limit")
}

func TestCourseScore_Percentage(t *testing.T) {
	assert.InDelta(t, 85.0, CourseScore{Score: 17, MaxScore: 20}.Percentage(), 1e-9)
	assert.Equal(t, 0.0, CourseScore{Score: 5}.Percentage())
}

func TestGoalHelpers(t *testing.T) {
	goals := []Goal{
		{ID: 3, AllocatedHours: 1.5},
		{ID: 1, AllocatedHours: 2},
	}
	assert.Equal(t, []int64{3, 1}, GoalIDs(goals))
	assert.Equal(t, 3.5, TotalHours(goals))
	assert.Empty(t, GoalIDs(nil))
	assert.Zero(t, TotalHours(nil))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Nil(t, Int64Ptr(0))
	if p := Int64Ptr(9); assert.NotNil(t, p) {
		assert.Equal(t, int64(9), *p)
	}
}
