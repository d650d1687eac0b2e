package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inspire-tracker/internal/advice"
	"inspire-tracker/internal/cgpa"
	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/model"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidTarget  = errors.New("target CGPA must be between 0 and 4")
)

// CGPASummary is what the tracker screen shows.
type CGPASummary struct {
	Record          model.CGPARecord
	Credits         int
	TargetProgress  float64
	Recommendations []string
}

// CGPAService manages the course list. CurrentCGPA is recomputed after
// every add and delete.
type CGPAService struct {
	log *logger.Logger
}

func NewCGPAService(log *logger.Logger) *CGPAService {
	return &CGPAService{log: log}
}

func (s *CGPAService) AddCourse(ctx context.Context, sess *Session, course model.Course) (model.Course, error) {
	if err := requireSession(sess); err != nil {
		return model.Course{}, err
	}
	course.Name = strings.TrimSpace(course.Name)
	course.Semester = strings.TrimSpace(course.Semester)
	course.Grade = cgpa.NormalizeGrade(course.Grade)
	if err := cgpa.ValidateCourse(course); err != nil {
		return model.Course{}, err
	}
	course.ID = uuid.NewString()

	rec := sess.Profile.CGPA.Get(ctx)
	rec.Courses = append(rec.Courses, course)
	rec.CurrentCGPA = cgpa.Compute(rec.Courses)
	if err := sess.Profile.CGPA.Save(ctx, rec); err != nil {
		return model.Course{}, fmt.Errorf("add course: %w", err)
	}
	s.log.Info("course added", "chat", sess.Profile.ChatID, "course", course.ID, "cgpa", rec.CurrentCGPA)
	return course, nil
}

// DeleteCourse removes a course by ID or unique ID prefix.
func (s *CGPAService) DeleteCourse(ctx context.Context, sess *Session, ref string) (model.Course, error) {
	if err := requireSession(sess); err != nil {
		return model.Course{}, err
	}
	ref = strings.TrimSpace(ref)
	rec := sess.Profile.CGPA.Get(ctx)
	idx := -1
	for i, c := range rec.Courses {
		if c.ID == ref || (len(ref) >= minGoalRefLen && strings.HasPrefix(c.ID, ref)) {
			if idx >= 0 {
				return model.Course{}, fmt.Errorf("%w: %q is ambiguous", ErrCourseNotFound, ref)
			}
			idx = i
		}
	}
	if idx < 0 || ref == "" {
		return model.Course{}, ErrCourseNotFound
	}

	removed := rec.Courses[idx]
	rec.Courses = append(rec.Courses[:idx:idx], rec.Courses[idx+1:]...)
	rec.CurrentCGPA = cgpa.Compute(rec.Courses)
	if err := sess.Profile.CGPA.Save(ctx, rec); err != nil {
		return model.Course{}, fmt.Errorf("delete course: %w", err)
	}
	s.log.Info("course deleted", "chat", sess.Profile.ChatID, "course", removed.ID, "cgpa", rec.CurrentCGPA)
	return removed, nil
}

func (s *CGPAService) SetTarget(ctx context.Context, sess *Session, target float64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !(target > 0 && target <= 4) {
		return ErrInvalidTarget
	}
	rec := sess.Profile.CGPA.Get(ctx)
	rec.TargetCGPA = cgpa.Round2(target)
	if err := sess.Profile.CGPA.Save(ctx, rec); err != nil {
		return fmt.Errorf("set target: %w", err)
	}
	return nil
}

func (s *CGPAService) Summary(ctx context.Context, p *Profile) CGPASummary {
	rec := p.CGPA.Get(ctx)
	return CGPASummary{
		Record:          rec,
		Credits:         cgpa.TotalCredits(rec.Courses),
		TargetProgress:  advice.TargetProgress(rec.CurrentCGPA, rec.TargetCGPA),
		Recommendations: advice.CourseRecommendations(rec.CurrentCGPA, rec.TargetCGPA),
	}
}

// Plan explains the grade needed over plannedCredits to reach the target.
func (s *CGPAService) Plan(ctx context.Context, p *Profile, plannedCredits int) string {
	rec := p.CGPA.Get(ctx)
	return advice.RequiredGrade(rec.CurrentCGPA, rec.TargetCGPA, cgpa.TotalCredits(rec.Courses), plannedCredits)
}
