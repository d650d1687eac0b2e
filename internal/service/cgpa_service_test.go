package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspire-tracker/internal/cgpa"
	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/model"
)

func TestCGPAService_AddAndDelete(t *testing.T) {
	ctx := context.Background()
	sess, _ := loggedIn(t)
	svc := NewCGPAService(logger.Nop())

	empty := svc.Summary(ctx, sess.Profile)
	assert.Equal(t, 0.0, empty.Record.CurrentCGPA)
	assert.Empty(t, empty.Record.Courses)
	assert.Len(t, empty.Recommendations, 3, "onboarding tips")

	calc, err := svc.AddCourse(ctx, sess, model.Course{Name: "Calculus", Credits: 4, Grade: "a", Semester: "Fall 2024"})
	require.NoError(t, err)
	assert.Equal(t, "A", calc.Grade)
	_, err = svc.AddCourse(ctx, sess, model.Course{Name: "Art", Credits: 2, Grade: "C"})
	require.NoError(t, err)

	sum := svc.Summary(ctx, sess.Profile)
	assert.InDelta(t, 3.33, sum.Record.CurrentCGPA, 1e-9)
	assert.Equal(t, 6, sum.Credits)

	_, err = svc.AddCourse(ctx, sess, model.Course{Name: "Bad", Credits: 0, Grade: "A"})
	assert.ErrorIs(t, err, cgpa.ErrInvalidCredits)
	_, err = svc.AddCourse(ctx, sess, model.Course{Name: "Bad", Credits: 3, Grade: "Q"})
	assert.ErrorIs(t, err, cgpa.ErrInvalidGrade)

	removed, err := svc.DeleteCourse(ctx, sess, calc.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, "Calculus", removed.Name)
	assert.InDelta(t, 2.0, svc.Summary(ctx, sess.Profile).Record.CurrentCGPA, 1e-9)

	_, err = svc.DeleteCourse(ctx, sess, calc.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCGPAService_TargetAndPlan(t *testing.T) {
	ctx := context.Background()
	sess, _ := loggedIn(t)
	svc := NewCGPAService(logger.Nop())

	assert.ErrorIs(t, svc.SetTarget(ctx, sess, 4.5), ErrInvalidTarget)
	assert.ErrorIs(t, svc.SetTarget(ctx, sess, 0), ErrInvalidTarget)
	assert.ErrorIs(t, svc.SetTarget(ctx, sess, math.NaN()), ErrInvalidTarget)
	assert.ErrorIs(t, svc.SetTarget(ctx, sess, math.Inf(1)), ErrInvalidTarget)
	require.NoError(t, svc.SetTarget(ctx, sess, 3.5))

	assert.Contains(t, svc.Plan(ctx, sess.Profile, 15), "maintain a 3.50 GPA in your courses")

	for i := 0; i < 10; i++ {
		_, err := svc.AddCourse(ctx, sess, model.Course{Name: "Course", Credits: 3, Grade: "B"})
		require.NoError(t, err)
	}
	sum := svc.Summary(ctx, sess.Profile)
	assert.InDelta(t, 3.0, sum.Record.CurrentCGPA, 1e-9)
	assert.Equal(t, 3.5, sum.Record.TargetCGPA)
	assert.Equal(t, 30, sum.Credits)
	assert.Len(t, sum.Recommendations, 4, "gap of 0.5 is moderate")
	assert.InDelta(t, 85.71, sum.TargetProgress, 0.01)

	assert.Contains(t, svc.Plan(ctx, sess.Profile, 15), "isn't possible")
	assert.Contains(t, svc.Plan(ctx, sess.Profile, 0), "no upcoming credits planned")
	assert.Contains(t, svc.Plan(ctx, sess.Profile, 60), "3.75 GPA (A- or higher)")
}
