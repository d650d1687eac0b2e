package cgpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspire-tracker/internal/model"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		courses []model.Course
		want    float64
	}{
		{name: "empty", want: 0},
		{
			name:    "single",
			courses: []model.Course{{Name: "Calc", Credits: 3, Grade: "B+"}},
			want:    3.3,
		},
		{
			name: "weighted",
			courses: []model.Course{
				{Name: "Calc", Credits: 4, Grade: "A"},
				{Name: "Art", Credits: 2, Grade: "C"},
			},
			want: 3.33,
		},
		{
			name: "invalid rows skipped",
			courses: []model.Course{
				{Name: "Calc", Credits: 3, Grade: "a-"},
				{Name: "Bad", Credits: 3, Grade: "Z"},
				{Name: "Zero", Credits: 0, Grade: "F"},
			},
			want: 3.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Compute(tt.courses), 1e-9)
		})
	}
}

func TestTotalCredits(t *testing.T) {
	courses := []model.Course{
		{Credits: 3, Grade: "A"},
		{Credits: 4, Grade: "F"},
		{Credits: 2, Grade: "?"},
	}
	assert.Equal(t, 7, TotalCredits(courses))
}

func TestValidateCourse(t *testing.T) {
	require.NoError(t, ValidateCourse(model.Course{Name: "Physics", Credits: 3, Grade: "b-"}))
	assert.ErrorIs(t, ValidateCourse(model.Course{Credits: 3, Grade: "A"}), ErrMissingName)
	assert.ErrorIs(t, ValidateCourse(model.Course{Name: "P", Credits: 0, Grade: "A"}), ErrInvalidCredits)
	assert.ErrorIs(t, ValidateCourse(model.Course{Name: "P", Credits: 3, Grade: "E"}), ErrInvalidGrade)
}

func TestGradePoint(t *testing.T) {
	for _, g := range Grades {
		_, ok := GradePoint(g)
		assert.True(t, ok, g)
	}
	gp, ok := GradePoint(" a+ ")
	require.True(t, ok)
	assert.Equal(t, 4.0, gp)
}
