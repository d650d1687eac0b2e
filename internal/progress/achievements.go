package progress

import (
	"strconv"
	"strings"
	"time"

	"inspire-tracker/internal/model"
)

// Requirement metrics understood by Evaluate.
const (
	MetricGoalsSet               = "goals_set"
	MetricGoalsCompleted         = "goals_completed"
	MetricCategoryGoalsCompleted = "category_goals_completed"
	MetricCategoriesWithGoals    = "categories_with_goals"
	MetricOverallProgress        = "overall_progress"
	MetricStreak                 = "streak"
)

type activity struct {
	goalsSet            int
	goalsCompleted      int
	bestCategoryDone    int
	categoriesWithGoals int
	categoryCount       int
	overallProgress     int
	streak              int
}

func measure(user *model.User, goals []model.Goal, categories []model.Category) activity {
	a := activity{categoryCount: len(categories)}
	for _, c := range categories {
		completed, total := CategoryCounts(c.ID, goals)
		a.goalsSet += total
		a.goalsCompleted += completed
		if total > 0 {
			a.categoriesWithGoals++
		}
		if completed > a.bestCategoryDone {
			a.bestCategoryDone = completed
		}
	}
	if user != nil {
		a.overallProgress = user.OverallProgress
		a.streak = user.Streak
	} else {
		a.overallProgress = OverallProgress(categories)
	}
	return a
}

// Evaluate unlocks every locked achievement whose requirements all hold and
// stamps its unlock date. Unlocked achievements are never re-locked and
// achievements without requirements are left alone. It returns the full
// updated list and the achievements unlocked by this call.
func Evaluate(user *model.User, goals []model.Goal, categories []model.Category, achievements []model.Achievement, now time.Time) ([]model.Achievement, []model.Achievement) {
	act := measure(user, goals, categories)
	out := make([]model.Achievement, len(achievements))
	var fresh []model.Achievement
	for i, ach := range achievements {
		if !ach.Unlocked && len(ach.Requirements) > 0 && allMet(ach.Requirements, act) {
			ach.Unlocked = true
			stamp := now
			ach.UnlockedDate = &stamp
			fresh = append(fresh, ach)
		}
		out[i] = ach
	}
	return out, fresh
}

func allMet(reqs []string, act activity) bool {
	for _, r := range reqs {
		if !met(r, act) {
			return false
		}
	}
	return true
}

func met(req string, act activity) bool {
	metric, raw, ok := strings.Cut(strings.TrimSpace(req), ":")
	if !ok {
		return false
	}
	metric = strings.TrimSpace(metric)
	raw = strings.TrimSpace(raw)

	if metric == MetricCategoriesWithGoals && raw == "all" {
		return act.categoryCount > 0 && act.categoriesWithGoals == act.categoryCount
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}

	switch metric {
	case MetricGoalsSet:
		return act.goalsSet >= threshold
	case MetricGoalsCompleted:
		return act.goalsCompleted >= threshold
	case MetricCategoryGoalsCompleted:
		return act.bestCategoryDone >= threshold
	case MetricCategoriesWithGoals:
		return act.categoriesWithGoals >= threshold
	case MetricOverallProgress:
		return act.overallProgress >= threshold
	case MetricStreak:
		return act.streak >= threshold
	default:
		return false
	}
}
