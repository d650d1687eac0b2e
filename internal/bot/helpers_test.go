package bot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inspire-tracker/internal/cgpa"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/service"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", progressBar(0))
	assert.Equal(t, "▓▓▓▓░░░░░░", progressBar(43))
	assert.Equal(t, "▓▓▓▓▓░░░░░", progressBar(45))
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓", progressBar(100))
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓", progressBar(140))
	assert.Equal(t, "░░░░░░░░░░", progressBar(-5))
}

func TestMatchCategory(t *testing.T) {
	categories := model.DefaultCategories()

	c, ok := matchCategory(categories, "fitness")
	assert.True(t, ok)
	assert.Equal(t, "fitness", c.ID)

	c, ok = matchCategory(categories, "mental health")
	assert.True(t, ok)
	assert.Equal(t, "mental", c.ID)

	c, ok = matchCategory(categories, categoryIcon("career")+" Career")
	assert.True(t, ok)
	assert.Equal(t, "career", c.ID)

	_, ok = matchCategory(categories, "cooking")
	assert.False(t, ok)
}

func TestShortIDAndTitle(t *testing.T) {
	assert.Equal(t, "goal1", shortID("goal1"))
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-6b7d-4c1a-9e55-0a7b8c9d0e1f"))
	assert.Equal(t, "Learn React…", shortTitle("Learn React basics", 12))
	assert.Equal(t, "Run 5k", shortTitle("  Run 5k ", 12))
}

func TestUserErrors(t *testing.T) {
	wrapped := fmt.Errorf("apply goal mutation: %w", service.ErrGoalNotFound)
	assert.True(t, isUserError(wrapped))
	assert.Equal(t, service.ErrGoalNotFound.Error(), userMessage(wrapped))

	assert.True(t, isUserError(cgpa.ErrInvalidGrade))
	assert.False(t, isUserError(fmt.Errorf("disk full")))
	assert.Equal(t, "disk full", userMessage(fmt.Errorf("disk full")))
}

func TestInputMatchers(t *testing.T) {
	assert.True(t, isSkipInput(btnSkip))
	assert.True(t, isSkipInput(" - "))
	assert.False(t, isSkipInput("tomorrow"))
	assert.True(t, isCancelInput("Cancel"))
	assert.True(t, isCancelInput(btnCancel))
}

func TestCarriesPassword(t *testing.T) {
	assert.True(t, carriesPassword["register"])
	assert.True(t, carriesPassword["login"])
	assert.False(t, carriesPassword["logout"])
	assert.False(t, carriesPassword["me"])
}

func TestFormatUserShowsLevel(t *testing.T) {
	text := formatUser(model.User{Name: "Ada <3", Email: "ada@example.com", Points: 120, Level: 2}, time.UTC)
	assert.Contains(t, text, "Ada &lt;3")
	assert.Contains(t, text, "Level 2 · 120 points")
}
