package model

// Priority levels a goal may carry.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Goal is a user-defined task owned by exactly one category.
// DueDate is a calendar date (2006-01-02); an unparsable value counts as no due date.
type Goal struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	DueDate     string   `json:"dueDate,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ValidPriority reports whether p is empty or one of the known levels.
func ValidPriority(p string) bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DefaultGoals seeds a fresh profile.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "goal1", CategoryID: "academics", Title: "Complete term paper", Description: "Finish 10-page research paper for Psychology class", DueDate: "2025-05-15"},
		{ID: "goal2", CategoryID: "academics", Title: "Review calculus", Description: "Study for upcoming exam", Completed: true, DueDate: "2025-05-03"},
		{ID: "goal3", CategoryID: "skills", Title: "Learn React basics", Description: "Complete online tutorial on React fundamentals", DueDate: "2025-05-20"},
		{ID: "goal4", CategoryID: "fitness", Title: "Run 5k", Description: "Prepare for campus charity run", DueDate: "2025-05-25"},
		{ID: "goal5", CategoryID: "career", Title: "Update resume", Description: "Add recent projects and experiences", DueDate: "2025-05-10"},
		{ID: "goal6", CategoryID: "mental", Title: "Daily meditation", Description: "10 minutes of mindfulness each morning", DueDate: "2025-05-06"},
	}
}
