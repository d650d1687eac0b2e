package model

import "time"

// Achievement is a badge. Unlocked only ever moves from false to true.
// Requirements are "metric:threshold" predicates that must all hold.
type Achievement struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlockedDate,omitempty"`
	Requirements []string   `json:"requirements,omitempty"`
}

func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "ach1", Title: "First Steps", Description: "Set your first goal", Icon: "check-circle", Requirements: []string{"goals_set:1"}},
		{ID: "ach2", Title: "Consistent Effort", Description: "Complete 5 goals in a single category", Icon: "star", Requirements: []string{"category_goals_completed:5"}},
		{ID: "ach3", Title: "Well-Rounded", Description: "Set at least one goal in each category", Icon: "compass", Requirements: []string{"categories_with_goals:all"}},
		{ID: "ach4", Title: "Halfway There", Description: "Reach 50% overall progress", Icon: "flag", Requirements: []string{"overall_progress:50"}},
		{ID: "ach5", Title: "On a Roll", Description: "Check in 7 days in a row", Icon: "flame", Requirements: []string{"streak:7"}},
	}
}
