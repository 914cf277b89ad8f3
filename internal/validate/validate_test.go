package validate

import (
	"errors"
	"testing"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidGoal(t *testing.T) {
	v := New()
	err := v.Struct(domain.NewGoal{
		Title:          "Read chapter 3",
		AllocatedHours: 1.5,
		ResourceType:   domain.ResourceDocumentation,
		ResourceURL:    "https://go.dev/doc",
	})
	assert.NoError(t, err)
}

func TestStruct_InvalidGoalReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Struct(domain.NewGoal{
		AllocatedHours: 0,
		ResourceType:   "PODCAST",
		ResourceURL:    "not a url",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "title is required", fields["title"])
	assert.Contains(t, fields, "allocatedHours")
	assert.Contains(t, fields, "resourceType")
	assert.Equal(t, "resourceUrl must be a valid URL", fields["resourceUrl"])
}

func TestStruct_ProgressBounds(t *testing.T) {
	v := New()
	tests := []struct {
		name    string
		update  domain.ProgressUpdate
		wantErr bool
	}{
		{"valid", domain.ProgressUpdate{EnrolledCourseID: 3, ProgressPercentage: 40, AdditionalHoursSpent: 2}, false},
		{"zero hours ok", domain.ProgressUpdate{EnrolledCourseID: 3, ProgressPercentage: 100}, false},
		{"over 100 percent", domain.ProgressUpdate{EnrolledCourseID: 3, ProgressPercentage: 120}, true},
		{"negative hours", domain.ProgressUpdate{EnrolledCourseID: 3, ProgressPercentage: 10, AdditionalHoursSpent: -1}, true},
		{"missing course", domain.ProgressUpdate{ProgressPercentage: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.update)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct_ScoreNotAboveMax(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(domain.NewCourseScore{EnrolledCourseID: 1, Score: 8, MaxScore: 10}))
	assert.ErrorIs(t, v.Struct(domain.NewCourseScore{EnrolledCourseID: 1, Score: 12, MaxScore: 10}), ErrInvalidInput)
}

func TestStruct_EnrollmentDate(t *testing.T) {
	v := New()
	ok := domain.ExternalEnrollment{CourseTitle: "Go", Platform: "Udemy", WeeklyHours: 4, TargetCompletionDate: "2026-12-01"}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.TargetCompletionDate = "01/12/2026"
	err := v.Struct(bad)
	assert.ErrorContains(t, err, "targetCompletionDate must be a date in YYYY-MM-DD format")
}

func TestStruct_NonStruct(t *testing.T) {
	v := New()
	assert.ErrorIs(t, v.Struct(42), ErrInvalidInput)
}
