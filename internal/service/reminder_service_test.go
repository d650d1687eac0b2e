package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

func TestReminderService_DailySummary(t *testing.T) {
	ctx := context.Background()
	sess, _ := loggedIn(t)
	svc := NewReminderService(7)

	text := svc.DailySummary(ctx, sess.Profile, testNow)
	assert.Contains(t, text, "Daily report")
	assert.Contains(t, text, "Overall progress:</b> 43%")
	assert.Contains(t, text, "6 goals · ✅ 1 done · ⏳ 5 pending · 📌 1 due today")
	assert.Contains(t, text, "Update resume")
	assert.Contains(t, text, "overdue", "daily meditation was due 2025-05-06")
	assert.NotContains(t, text, "Run 5k", "due beyond the horizon")
	assert.Contains(t, text, "steady progress", "43% overall is mid band")
}

func TestReminderService_NoUser(t *testing.T) {
	p := OpenProfile(store.NewMemoryStore(), 5)
	text := NewReminderService(0).DailySummary(context.Background(), p, testNow)
	assert.True(t, strings.HasSuffix(text, "Set your goals and start your self-improvement journey today!"))
}

func TestFormatGoal(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	names := map[string]string{"fit": "Fitness"}

	line := FormatGoal(model.Goal{Title: "Run <5k>", CategoryID: "fit", DueDate: "2025-05-11", Priority: "high"}, names, now)
	assert.Equal(t, "⏳ Run &lt;5k&gt; <i>(Fitness)</i> [high]\n   ⏰ due 2025-05-11\n", line)

	line = FormatGoal(model.Goal{Title: "Old", DueDate: "2025-05-01"}, names, now)
	assert.True(t, strings.HasPrefix(line, "⚠️ Old"))

	line = FormatGoal(model.Goal{Title: "Later", DueDate: "2025-06-01"}, names, now)
	assert.True(t, strings.HasPrefix(line, "🟢 Later"))

	line = FormatGoal(model.Goal{Title: "Done", Completed: true}, names, now)
	assert.Equal(t, "✅ Done\n", line)
}
