// Package cgpa holds the grade scale and credit-weighted average arithmetic.
package cgpa

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"inspire-tracker/internal/model"
)

var (
	ErrInvalidGrade   = errors.New("invalid grade")
	ErrInvalidCredits = errors.New("credits must be a positive integer")
	ErrMissingName    = errors.New("course name is required")
)

// Grades lists the accepted letter grades, best first.
var Grades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"F":  0.0,
}

// NormalizeGrade upper-cases and trims a grade.
func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// GradePoint returns the 4.0-scale value of a letter grade.
func GradePoint(grade string) (float64, bool) {
	gp, ok := gradePoints[NormalizeGrade(grade)]
	return gp, ok
}

// Compute is the credit-weighted grade point average rounded to 2 decimals.
// Courses with unknown grades or non-positive credits are skipped.
func Compute(courses []model.Course) float64 {
	var points float64
	credits := 0
	for _, c := range courses {
		gp, ok := GradePoint(c.Grade)
		if !ok || c.Credits <= 0 {
			continue
		}
		points += gp * float64(c.Credits)
		credits += c.Credits
	}
	if credits == 0 {
		return 0
	}
	return Round2(points / float64(credits))
}

// TotalCredits sums credits of valid courses.
func TotalCredits(courses []model.Course) int {
	total := 0
	for _, c := range courses {
		if _, ok := GradePoint(c.Grade); ok && c.Credits > 0 {
			total += c.Credits
		}
	}
	return total
}

// ValidateCourse checks a course has a name, positive credits and a known grade.
func ValidateCourse(c model.Course) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	if c.Credits <= 0 {
		return ErrInvalidCredits
	}
	if _, ok := GradePoint(c.Grade); !ok {
		return fmt.Errorf("%w %q, expected one of %s", ErrInvalidGrade, c.Grade, strings.Join(Grades, " "))
	}
	return nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
