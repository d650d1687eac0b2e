package repository

// Keys of the persisted layout, relative to a profile scope.
const (
	KeyCategories    = "categories"
	KeyGoals         = "goals"
	KeyAchievements  = "achievements"
	KeyCurrentUser   = "current-user"
	KeyUsers         = "users"
	KeyUserPasswords = "user-passwords"
	KeyCGPA          = "cgpa"
	KeyTodayMood     = "today-mood"

	// KeyProfiles lives in the root namespace, outside any profile.
	KeyProfiles = "profiles"
)
