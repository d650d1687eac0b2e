// Package progress derives category, user and goal aggregates from goals.
// Every function here is pure and total.
package progress

import (
	"math"
	"time"

	"inspire-tracker/internal/model"
)

const dateLayout = "2006-01-02"

const (
	PointsPerGoal  = 10
	PointsPerLevel = 100
)

// Stats summarises a goal list.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	DueToday  int `json:"dueToday"`
}

// CategoryCounts returns completed and total goals referencing categoryID.
func CategoryCounts(categoryID string, goals []model.Goal) (completed, total int) {
	for _, g := range goals {
		if g.CategoryID != categoryID {
			continue
		}
		total++
		if g.Completed {
			completed++
		}
	}
	return completed, total
}

// CategoryProgress is the rounded completion percentage of the category's
// goals. A category without goals keeps its stored progress.
func CategoryProgress(category model.Category, goals []model.Goal) int {
	completed, total := CategoryCounts(category.ID, goals)
	if total == 0 {
		return category.Progress
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// RecomputeAllCategories returns a copy of categories with progress derived
// from goals. Goals pointing at unknown categories are ignored.
func RecomputeAllCategories(categories []model.Category, goals []model.Goal) []model.Category {
	out := make([]model.Category, len(categories))
	for i, c := range categories {
		c.Progress = CategoryProgress(c, goals)
		out[i] = c
	}
	return out
}

// OverallProgress is the rounded mean of category progress, 0 for none.
func OverallProgress(categories []model.Category) int {
	if len(categories) == 0 {
		return 0
	}
	sum := 0
	for _, c := range categories {
		sum += c.Progress
	}
	return int(math.Round(float64(sum) / float64(len(categories))))
}

// Points awards PointsPerGoal for every completed goal.
func Points(goals []model.Goal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n * PointsPerGoal
}

// Level starts at 1 and goes up every PointsPerLevel points.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// GoalStats counts goals. DueToday covers incomplete goals whose due date is
// the calendar day of today in today's location.
func GoalStats(goals []model.Goal, today time.Time) Stats {
	var st Stats
	st.Total = len(goals)
	for _, g := range goals {
		if g.Completed {
			st.Completed++
			continue
		}
		if due, ok := ParseDueDate(g.DueDate, today.Location()); ok && sameDay(due, today) {
			st.DueToday++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

// PendingGoals returns incomplete goals that are undated or due no later than
// horizonDays after today. Input order is preserved.
func PendingGoals(goals []model.Goal, today time.Time, horizonDays int) []model.Goal {
	limit := startOfDay(today).AddDate(0, 0, horizonDays)
	out := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Completed {
			continue
		}
		due, ok := ParseDueDate(g.DueDate, today.Location())
		if !ok || !startOfDay(due).After(limit) {
			out = append(out, g)
		}
	}
	return out
}

// Overdue reports whether an incomplete goal's due date is before today.
func Overdue(g model.Goal, today time.Time) bool {
	if g.Completed {
		return false
	}
	due, ok := ParseDueDate(g.DueDate, today.Location())
	return ok && startOfDay(due).Before(startOfDay(today))
}

// ParseDueDate reads a calendar date or an RFC3339 timestamp. Anything else
// counts as no due date.
func ParseDueDate(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
