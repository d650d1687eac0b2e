// Package advice turns progress numbers into human-readable guidance.
package advice

import (
	"fmt"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/progress"
)

const (
	msgNoUser     = "Set your goals and start your self-improvement journey today!"
	msgCaughtUp   = "You're all caught up! Every goal is complete. Time to set a new challenge."
	msgLowTmpl    = "Every step counts! Try focusing on %s to build some momentum."
	msgMidTmpl    = "You're making steady progress! Give %s a little extra attention this week."
	msgHighTmpl   = "Amazing work! You're at %d%% overall. Keep up the momentum!"
	genericFocus  = "your goals"
	lowThreshold  = 30
	highThreshold = 60
)

// MotivationMessage picks a message from the first matching rule: no user,
// nothing pending, low, mid, then high overall progress.
func MotivationMessage(user *model.User, categories []model.Category, goals []model.Goal) string {
	if user == nil {
		return msgNoUser
	}

	pending := 0
	for _, g := range goals {
		if !g.Completed {
			pending++
		}
	}
	if pending == 0 {
		return msgCaughtUp
	}

	switch {
	case user.OverallProgress < lowThreshold:
		return fmt.Sprintf(msgLowTmpl, focusLabel(categories, goals))
	case user.OverallProgress < highThreshold:
		return fmt.Sprintf(msgMidTmpl, focusLabel(categories, goals))
	default:
		return fmt.Sprintf(msgHighTmpl, user.OverallProgress)
	}
}

// WeakestCategory is the lowest-progress category that has at least one
// goal. Ties go to the earlier category.
func WeakestCategory(categories []model.Category, goals []model.Goal) (model.Category, bool) {
	var best model.Category
	found := false
	for _, c := range categories {
		if _, total := progress.CategoryCounts(c.ID, goals); total == 0 {
			continue
		}
		if !found || c.Progress < best.Progress {
			best = c
			found = true
		}
	}
	return best, found
}

func focusLabel(categories []model.Category, goals []model.Goal) string {
	c, ok := WeakestCategory(categories, goals)
	if !ok {
		return genericFocus
	}
	return fmt.Sprintf("your %s goals", c.Name)
}

// CategoryEncouragement is the one-liner shown next to a mission's progress.
func CategoryEncouragement(progress int) string {
	switch {
	case progress < 25:
		return "Just getting started! Keep going."
	case progress < 50:
		return "Making progress! You're on the right track."
	case progress < 75:
		return "Great progress! Keep up the momentum."
	default:
		return "Almost there! You're doing amazing!"
	}
}
