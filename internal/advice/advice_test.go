package advice

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspire-tracker/internal/model"
)

func TestMotivationMessage(t *testing.T) {
	categories := []model.Category{
		{ID: "fit", Name: "Fitness", Progress: 20},
		{ID: "car", Name: "Career", Progress: 10},
		{ID: "aca", Name: "Academics", Progress: 10},
		{ID: "empty", Name: "Empty", Progress: 0},
	}
	goals := []model.Goal{
		{ID: "1", CategoryID: "fit"},
		{ID: "2", CategoryID: "car", Completed: true},
		{ID: "3", CategoryID: "aca"},
	}

	tests := []struct {
		name       string
		user       *model.User
		categories []model.Category
		goals      []model.Goal
		contains   string
		equals     string
	}{
		{name: "no user", user: nil, categories: categories, goals: goals, equals: msgNoUser},
		{
			name:       "caught up",
			user:       &model.User{OverallProgress: 10},
			categories: categories,
			goals:      []model.Goal{{ID: "1", CategoryID: "fit", Completed: true}},
			equals:     msgCaughtUp,
		},
		{name: "no goals at all is caught up", user: &model.User{}, categories: categories, equals: msgCaughtUp},
		{
			name:       "low names weakest category, first on tie",
			user:       &model.User{OverallProgress: 12},
			categories: categories,
			goals:      goals,
			contains:   "your Career goals",
		},
		{
			name:       "mid",
			user:       &model.User{OverallProgress: 45},
			categories: categories,
			goals:      goals,
			contains:   "steady progress",
		},
		{
			name:       "low with only orphan goals falls back",
			user:       &model.User{OverallProgress: 5},
			categories: categories,
			goals:      []model.Goal{{ID: "x", CategoryID: "nope"}},
			contains:   "focusing on your goals",
		},
		{
			name:       "high",
			user:       &model.User{OverallProgress: 60},
			categories: categories,
			goals:      goals,
			contains:   "60% overall",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MotivationMessage(tt.user, tt.categories, tt.goals)
			if tt.equals != "" {
				assert.Equal(t, tt.equals, got)
			}
			if tt.contains != "" {
				assert.Contains(t, got, tt.contains)
			}
		})
	}
}

func TestCategoryEncouragement(t *testing.T) {
	assert.Equal(t, "Just getting started! Keep going.", CategoryEncouragement(0))
	assert.Contains(t, CategoryEncouragement(25), "right track")
	assert.Contains(t, CategoryEncouragement(74), "momentum")
	assert.Contains(t, CategoryEncouragement(100), "Almost there")
}

func TestCourseRecommendations(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		first           string
		count           int
	}{
		{"onboarding", 0, 3.5, onboardingTips[0], 3},
		{"met", 3.6, 3.5, maintainTips[0], 3},
		{"equal", 3.5, 3.5, maintainTips[0], 3},
		{"close", 3.2, 3.5, closeGapTips[0], 3},
		{"moderate", 2.8, 3.5, moderateTips[0], 4},
		{"major", 2.0, 3.5, majorTips[0], 5},
		{"exactly one", 2.5, 3.5, majorTips[0], 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseRecommendations(tt.current, tt.target)
			require.Len(t, got, tt.count)
			assert.Equal(t, tt.first, got[0])
		})
	}

	got := CourseRecommendations(0, 4)
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", onboardingTips[0])
}

func TestRequiredGrade(t *testing.T) {
	tests := []struct {
		name                    string
		current, target         float64
		currentCredits, planned int
		contains                string
	}{
		{"no history", 0, 3.5, 0, 15, "maintain a 3.50 GPA in your courses"},
		{"infeasible", 3.0, 3.5, 30, 15, "more than a 4.0 in your upcoming 15 credits"},
		{"infeasible high history", 3.2, 3.5, 60, 15, "isn't possible"},
		{"already met", 4.0, 3.0, 90, 10, "already achieved"},
		{"no planned credits", 3.0, 3.5, 30, 0, "no upcoming credits planned"},
		{"negative planned credits", 3.0, 3.5, 30, -3, "no upcoming credits planned"},
		{"band", 3.0, 3.2, 30, 30, "3.40 GPA (B+ or higher) in your upcoming 30 credits"},
		{"low band", 2.0, 2.1, 30, 30, "2.20 GPA (C or higher)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredGrade(tt.current, tt.target, tt.currentCredits, tt.planned)
			assert.Contains(t, got, tt.contains)
			assert.False(t, strings.Contains(got, "NaN") || strings.Contains(got, "Inf"))
		})
	}
}

func TestRequiredGPA(t *testing.T) {
	assert.InDelta(t, 4.5, RequiredGPA(3.0, 3.5, 30, 15), 1e-9)
	assert.InDelta(t, 4.7, RequiredGPA(3.2, 3.5, 60, 15), 1e-9)
	assert.True(t, math.IsNaN(RequiredGPA(3.0, 3.5, 30, 0)))
}

func TestLetterBand(t *testing.T) {
	assert.Equal(t, "A- or higher", LetterBand(4.0))
	assert.Equal(t, "A- or higher", LetterBand(3.7))
	assert.Equal(t, "B+ or higher", LetterBand(3.69))
	assert.Equal(t, "B or higher", LetterBand(3.0))
	assert.Equal(t, "B- or higher", LetterBand(2.7))
	assert.Equal(t, "C+ or higher", LetterBand(2.3))
	assert.Equal(t, "C or higher", LetterBand(2.0))
	assert.Equal(t, "D or higher", LetterBand(0.5))
}

func TestTargetProgress(t *testing.T) {
	assert.Equal(t, 0.0, TargetProgress(0, 3.5))
	assert.Equal(t, 0.0, TargetProgress(3.0, 0))
	assert.InDelta(t, 50.0, TargetProgress(2.0, 4.0), 1e-9)
	assert.Equal(t, 100.0, TargetProgress(3.9, 3.5))
}

func TestDailyQuote(t *testing.T) {
	jan1 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, quotes[1], DailyQuote(jan1))
	assert.Equal(t, DailyQuote(jan1), DailyQuote(jan1.Add(10*time.Hour)))
	assert.Equal(t, quotes[0], DailyQuote(time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)))
}

func TestAssistantReply(t *testing.T) {
	assert.Equal(t, assistantGreeting, AssistantReply("Hi there"))
	assert.Equal(t, assistantGreeting, AssistantReply("   "))
	assert.Contains(t, AssistantReply("How do I raise my GPA?"), "/plan")
	assert.Contains(t, AssistantReply("I feel so tired"), "mindfulness")

	q := "what should I read about history"
	first := AssistantReply(q)
	assert.Equal(t, first, AssistantReply(q))
	assert.Contains(t, cannedReplies, first)
}
