package model

import "time"

// Moods accepted by a daily check-in.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodExcited = "excited"
	MoodTired   = "tired"
)

// ValidMood reports whether m is one of the known moods.
func ValidMood(m string) bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodTired:
		return true
	}
	return false
}

// User is a locally registered account. OverallProgress is derived from
// category progress and recomputed on every goal mutation.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhotoURL        string     `json:"photoUrl,omitempty"`
	University      string     `json:"university,omitempty"`
	OverallProgress int        `json:"overallProgress"`
	CurrentMood     string     `json:"currentMood,omitempty"`
	LastCheckIn     *time.Time `json:"lastCheckIn,omitempty"`
	JoinDate        *time.Time `json:"joinDate,omitempty"`
	Streak          int        `json:"streak,omitempty"`
	Points          int        `json:"points,omitempty"`
	Level           int        `json:"level,omitempty"`
}
