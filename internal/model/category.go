package model

// Category is an improvement area ("mission") that aggregates goals.
// Progress is derived from the category's goals and is never set by the user.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Progress    int    `json:"progress"`
	Color       string `json:"color"`
	Gradient    string `json:"gradient"`
}

// DefaultCategories is the seed list written on first load of a profile.
func DefaultCategories() []Category {
	return []Category{
		{ID: "academics", Name: "Academics", Description: "Track your academic progress and study habits", Icon: "book", Progress: 35, Color: "improvement-academics", Gradient: "from-purple-400 to-indigo-500"},
		{ID: "skills", Name: "Skills", Description: "Develop new abilities and track your learning", Icon: "award", Progress: 45, Color: "improvement-skills", Gradient: "from-blue-400 to-cyan-500"},
		{ID: "fitness", Name: "Fitness", Description: "Monitor your physical health and fitness goals", Icon: "activity", Progress: 60, Color: "improvement-fitness", Gradient: "from-green-400 to-emerald-500"},
		{ID: "career", Name: "Career", Description: "Set and achieve your professional goals", Icon: "trending-up", Progress: 25, Color: "improvement-career", Gradient: "from-orange-400 to-amber-500"},
		{ID: "mental", Name: "Mental Health", Description: "Focus on your mental wellbeing and mindfulness", Icon: "heart", Progress: 50, Color: "improvement-mental", Gradient: "from-indigo-200 to-purple-300"},
	}
}
