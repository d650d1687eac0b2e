package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"inspire-tracker/internal/advice"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/progress"
)

// maxReportGoals caps the pending list in a daily report.
const maxReportGoals = 5

// ReminderService builds human-readable summaries for daily notifications.
type ReminderService struct {
	horizonDays int
}

func NewReminderService(horizonDays int) *ReminderService {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &ReminderService{horizonDays: horizonDays}
}

// DailySummary renders the profile's report as Telegram HTML.
func (s *ReminderService) DailySummary(ctx context.Context, p *Profile, now time.Time) string {
	user := p.Users.Current(ctx)
	categories := p.Categories.GetAll(ctx)
	goals := p.Goals.GetAll(ctx)
	stats := progress.GoalStats(goals, now)
	pending := progress.PendingGoals(goals, now, s.horizonDays)
	quote := advice.DailyQuote(now)

	catNames := make(map[string]string, len(categories))
	for _, c := range categories {
		catNames[c.ID] = c.Name
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily report</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("Monday, 02 Jan 2006")))
	builder.WriteString(fmt.Sprintf("💬 <i>%s</i> — %s\n\n", html.EscapeString(quote.Text), html.EscapeString(quote.Author)))

	builder.WriteString(fmt.Sprintf("📈 <b>Overall progress:</b> %d%%\n", progress.OverallProgress(categories)))
	builder.WriteString(fmt.Sprintf("🎯 %d goals · ✅ %d done · ⏳ %d pending · 📌 %d due today\n\n",
		stats.Total, stats.Completed, stats.Pending, stats.DueToday))

	builder.WriteString(fmt.Sprintf("🔥 <b>Next %d days</b>\n", s.horizonDays))
	if len(pending) == 0 {
		builder.WriteString("— nothing pending\n")
	} else {
		for i, goal := range pending {
			if i == maxReportGoals {
				builder.WriteString(fmt.Sprintf("… and %d more\n", len(pending)-maxReportGoals))
				break
			}
			builder.WriteString(FormatGoal(goal, catNames, now))
		}
	}

	builder.WriteString("\n")
	builder.WriteString(html.EscapeString(advice.MotivationMessage(user, categories, goals)))
	return strings.TrimSpace(builder.String())
}

// FormatGoal renders one goal line with a due-date marker.
func FormatGoal(goal model.Goal, catNames map[string]string, now time.Time) string {
	var sb strings.Builder

	icon := "🟢"
	due, dated := progress.ParseDueDate(goal.DueDate, now.Location())
	switch {
	case goal.Completed:
		icon = "✅"
	case progress.Overdue(goal, now):
		icon = "⚠️"
	case dated && due.Sub(dayStart(now)) <= 48*time.Hour:
		icon = "⏳"
	}

	sb.WriteString(fmt.Sprintf("%s %s", icon, html.EscapeString(strings.TrimSpace(goal.Title))))
	if name, ok := catNames[goal.CategoryID]; ok && strings.TrimSpace(name) != "" {
		sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(strings.TrimSpace(name))))
	}
	if goal.Priority != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", goal.Priority))
	}
	if dated {
		if progress.Overdue(goal, now) {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s — <b>overdue</b>", due.Format("2006-01-02")))
		} else {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s", due.Format("2006-01-02")))
		}
	}
	if goal.Description != "" {
		sb.WriteString(fmt.Sprintf("\n   📝 %s", html.EscapeString(strings.TrimSpace(goal.Description))))
	}
	sb.WriteByte('\n')
	return sb.String()
}
