package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"inspire-tracker/internal/advice"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/progress"
	"inspire-tracker/internal/service"
)

// maxGoalButtons caps the inline toggle buttons under a goal list.
const maxGoalButtons = 20

func (b *Bot) handleMissions(ctx context.Context, chatID int64) error {
	p := b.profile(chatID)
	categories := b.svc.Goals.Categories(ctx, p)
	goals := p.Goals.GetAll(ctx)

	var sb strings.Builder
	sb.WriteString("🧭 <b>Improvement missions</b>\n\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		done, total := progress.CategoryCounts(c.ID, goals)
		sb.WriteString(fmt.Sprintf("%s <b>%s</b> · %d/%d goals\n", categoryIcon(c.ID), escape(c.Name), done, total))
		sb.WriteString(fmt.Sprintf("   %s %d%%\n", progressBar(c.Progress), c.Progress))
		sb.WriteString(fmt.Sprintf("   <i>%s</i>\n\n", escape(advice.CategoryEncouragement(c.Progress))))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %s", categoryIcon(c.ID), c.Name), cbCategoryPrefix+c.ID),
		))
	}
	sb.WriteString(fmt.Sprintf("📈 Overall: %d%%", progress.OverallProgress(categories)))

	if len(rows) == 0 {
		return b.sendText(chatID, sb.String())
	}
	return b.sendWithReplyMarkup(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendGoalList(ctx context.Context, chatID int64, categoryRef string) error {
	p := b.profile(chatID)
	categories := b.svc.Goals.Categories(ctx, p)

	var categoryID, heading string
	if categoryRef != "" {
		cat, ok := matchCategory(categories, categoryRef)
		if !ok {
			return b.sendText(chatID, fmt.Sprintf("Unknown category %q. See /missions.", escape(categoryRef)))
		}
		categoryID = cat.ID
		heading = fmt.Sprintf("%s <b>%s goals</b>\n\n", categoryIcon(cat.ID), escape(cat.Name))
	} else {
		heading = "🎯 <b>All goals</b>\n\n"
	}

	goals := b.svc.Goals.List(ctx, p, categoryID)
	if len(goals) == 0 {
		return b.sendText(chatID, heading+"Nothing here yet. Add one with /newgoal.")
	}

	now := b.now()
	catNames := categoryNames(categories)
	var sb strings.Builder
	sb.WriteString(heading)
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range goals {
		sb.WriteString(service.FormatGoal(g, catNames, now))
		sb.WriteString(fmt.Sprintf("   🆔 <code>%s</code>\n", escape(shortID(g.ID))))
		if len(rows) < maxGoalButtons {
			label := "☑️ " + shortTitle(g.Title, 30)
			if g.Completed {
				label = "↩️ " + shortTitle(g.Title, 30)
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, cbTogglePrefix+g.ID),
			))
		}
	}
	return b.sendWithReplyMarkup(chatID, strings.TrimSpace(sb.String()), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) startNewGoalConversation(ctx context.Context, chatID int64) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	categories := b.svc.Goals.Categories(ctx, sess.Profile)
	b.log.Debug("start new goal conversation", "chat", chatID)
	b.setConversation(chatID, &conversationState{stage: stageCategory})
	return b.sendWithReplyMarkup(chatID, "🆕 New goal.\n<b>Step 1:</b> which mission does it belong to?", categoryKeyboard(categories))
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	state := b.getConversation(chatID)
	if state == nil {
		return nil
	}

	text := strings.TrimSpace(msg.Text)
	switch state.stage {
	case stageCategory:
		categories := b.svc.Goals.Categories(ctx, b.profile(chatID))
		cat, ok := matchCategory(categories, text)
		if !ok {
			return b.sendWithReplyMarkup(chatID, "Pick one of the missions below.", categoryKeyboard(categories))
		}
		state.input.CategoryID = cat.ID
		state.stage = stageTitle
		return b.sendWithReplyMarkup(chatID, "<b>Step 2:</b> what is the goal called?", cancelKeyboard())
	case stageTitle:
		if text == "" {
			return b.sendWithReplyMarkup(chatID, "The title can't be empty.", cancelKeyboard())
		}
		state.input.Title = text
		state.stage = stageDescription
		return b.sendWithReplyMarkup(chatID, "✏️ Add a short description (#tags welcome) or press Skip.", skipKeyboard())
	case stageDescription:
		if !isSkipInput(text) {
			state.input.Description = text
			state.input.Tags = parseTags(text)
		}
		state.stage = stageDueDate
		return b.sendWithReplyMarkup(chatID, "⏰ Due date as <code>2025-11-30</code>, <i>today</i> or <i>tomorrow</i> (or Skip).", skipKeyboard())
	case stageDueDate:
		if !isSkipInput(text) {
			due, err := parseDueDate(text, b.now())
			if err != nil {
				return b.sendWithReplyMarkup(chatID, "I can't read that date. Use <code>2025-11-30</code> or Skip.", skipKeyboard())
			}
			state.input.DueDate = &due
		}
		state.stage = stagePriority
		return b.sendWithReplyMarkup(chatID, "🚦 Priority?", priorityKeyboard())
	case stagePriority:
		if !isSkipInput(text) {
			priority, ok := parsePriority(text)
			if !ok {
				return b.sendWithReplyMarkup(chatID, "Choose high, medium or low.", priorityKeyboard())
			}
			state.input.Priority = priority
		}
		input := state.input
		b.clearConversation(chatID)
		return b.finishGoalCreation(ctx, chatID, input)
	default:
		b.clearConversation(chatID)
		return b.sendText(chatID, "Input reset. Start again with /newgoal.")
	}
}

func (b *Bot) finishGoalCreation(ctx context.Context, chatID int64, input service.GoalInput) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}

	goal, res, err := b.svc.Goals.AddGoal(ctx, sess, input, b.now())
	if err != nil {
		return b.replyError(chatID, err)
	}

	var summary strings.Builder
	summary.WriteString("✅ <b>Goal saved</b>\n")
	summary.WriteString(fmt.Sprintf("• <b>ID:</b> <code>%s</code>\n", shortID(goal.ID)))
	summary.WriteString(fmt.Sprintf("• <b>Title:</b> %s\n", escape(goal.Title)))
	if goal.Description != "" {
		summary.WriteString(fmt.Sprintf("• <b>Description:</b> %s\n", escape(goal.Description)))
	}
	if goal.DueDate != "" {
		summary.WriteString(fmt.Sprintf("• <b>Due:</b> %s\n", goal.DueDate))
	}
	if goal.Priority != "" {
		summary.WriteString(fmt.Sprintf("• <b>Priority:</b> %s %s\n", priorityIcon(goal.Priority), goal.Priority))
	}
	for _, c := range res.Categories {
		if c.ID == goal.CategoryID {
			summary.WriteString(fmt.Sprintf("• <b>%s:</b> %d%%\n", escape(c.Name), c.Progress))
		}
	}
	summary.WriteString(formatUnlocked(res.Unlocked))
	return b.sendText(chatID, strings.TrimSpace(summary.String()))
}

func (b *Bot) toggleGoal(ctx context.Context, chatID int64, ref string) error {
	if ref == "" {
		return b.sendText(chatID, "Usage: <code>/toggle &lt;id&gt;</code>. IDs are shown in /goals.")
	}
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}

	goal, res, err := b.svc.Goals.ToggleGoal(ctx, sess, ref, b.now())
	if err != nil {
		return b.replyError(chatID, err)
	}

	status := "↩️ Marked as not done"
	if goal.Completed {
		status = "🎉 Completed"
	}
	text := fmt.Sprintf("%s: <b>%s</b>\n📈 Overall progress: %d%%", status, escape(goal.Title), res.User.OverallProgress)
	return b.sendText(chatID, text+formatUnlocked(res.Unlocked))
}

func (b *Bot) handleStats(ctx context.Context, chatID int64) error {
	p := b.profile(chatID)
	stats := b.svc.Goals.Stats(ctx, p, b.now())
	overall := progress.OverallProgress(b.svc.Goals.Categories(ctx, p))
	text := fmt.Sprintf(
		"📊 <b>Goal statistics</b>\n"+
			"• Total: %d\n• Completed: %d\n• Pending: %d\n• Due today: %d\n\n"+
			"📈 Overall progress: %d%% %s",
		stats.Total, stats.Completed, stats.Pending, stats.DueToday, overall, progressBar(overall),
	)
	return b.sendText(chatID, text)
}

func (b *Bot) handlePending(ctx context.Context, chatID int64) error {
	p := b.profile(chatID)
	now := b.now()
	horizon := b.config.PendingHorizonDays
	pending := b.svc.Goals.Pending(ctx, p, now, horizon)
	if len(pending) == 0 {
		return b.sendText(chatID, fmt.Sprintf("🎉 Nothing due in the next %d days.", horizon))
	}

	catNames := categoryNames(b.svc.Goals.Categories(ctx, p))
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⏳ <b>Due within %d days</b>\n\n", horizon))
	for _, g := range pending {
		sb.WriteString(service.FormatGoal(g, catNames, now))
	}
	return b.sendText(chatID, strings.TrimSpace(sb.String()))
}

func (b *Bot) handleMotivation(ctx context.Context, chatID int64) error {
	p := b.profile(chatID)
	var user *model.User
	if sess, ok := b.svc.Auth.Restore(ctx, p); ok {
		user = &sess.User
	}
	text := advice.MotivationMessage(user, b.svc.Goals.Categories(ctx, p), p.Goals.GetAll(ctx))
	return b.sendText(chatID, "💪 "+escape(text))
}

func (b *Bot) handleAchievements(ctx context.Context, chatID int64) error {
	achievements := b.profile(chatID).Achievements.GetAll(ctx)
	loc := b.loc

	var sb strings.Builder
	sb.WriteString("🏆 <b>Achievements</b>\n\n")
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
			sb.WriteString(fmt.Sprintf("🏅 <b>%s</b> — %s", escape(a.Title), escape(a.Description)))
			if a.UnlockedDate != nil {
				sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", a.UnlockedDate.In(loc).Format("2006-01-02")))
			}
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("🔒 %s — %s\n", escape(a.Title), escape(a.Description)))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d unlocked", unlocked, len(achievements)))
	return b.sendText(chatID, sb.String())
}

func (b *Bot) handleQuote(chatID int64) error {
	q := advice.DailyQuote(b.now())
	return b.sendText(chatID, fmt.Sprintf("💬 <i>%s</i>\n— %s", escape(q.Text), escape(q.Author)))
}

func (b *Bot) handleReport(ctx context.Context, chatID int64) error {
	return b.sendText(chatID, b.svc.Reminder.DailySummary(ctx, b.profile(chatID), b.now()))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data
	b.log.Debug("callback", "chat", chatID, "data", data)

	switch {
	case strings.HasPrefix(data, cbTogglePrefix):
		b.ackCallback(cb.ID, "")
		return b.toggleGoal(ctx, chatID, strings.TrimPrefix(data, cbTogglePrefix))
	case strings.HasPrefix(data, cbCategoryPrefix):
		b.ackCallback(cb.ID, "")
		return b.sendGoalList(ctx, chatID, strings.TrimPrefix(data, cbCategoryPrefix))
	case strings.HasPrefix(data, cbMoodPrefix):
		b.ackCallback(cb.ID, "")
		sess, err := b.session(ctx, chatID)
		if sess == nil {
			return err
		}
		return b.checkIn(ctx, chatID, sess, strings.TrimPrefix(data, cbMoodPrefix))
	default:
		b.ackCallback(cb.ID, "")
		return nil
	}
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	chatID := msg.Chat.ID
	switch strings.TrimSpace(strings.ToLower(msg.Text)) {
	case strings.ToLower(menuLabelNewGoal):
		return true, b.startNewGoalConversation(ctx, chatID)
	case strings.ToLower(menuLabelGoals):
		return true, b.sendGoalList(ctx, chatID, "")
	case strings.ToLower(menuLabelMissions):
		return true, b.handleMissions(ctx, chatID)
	case strings.ToLower(menuLabelStats):
		return true, b.handleStats(ctx, chatID)
	case strings.ToLower(menuLabelCGPA):
		return true, b.handleCGPA(ctx, chatID)
	case strings.ToLower(menuLabelHelp):
		return true, b.sendText(chatID, helpText)
	default:
		return false, nil
	}
}

// matchCategory resolves a category by ID or name, ignoring case and a
// leading icon from the keyboard label.
func matchCategory(categories []model.Category, text string) (model.Category, bool) {
	value := strings.ToLower(strings.TrimSpace(text))
	for _, c := range categories {
		if value == strings.ToLower(c.ID) || value == strings.ToLower(c.Name) {
			return c, true
		}
		if strings.HasSuffix(value, " "+strings.ToLower(c.Name)) {
			return c, true
		}
	}
	return model.Category{}, false
}

func categoryNames(categories []model.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func formatUnlocked(unlocked []model.Achievement) string {
	if len(unlocked) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n\n🏆 <b>Achievement unlocked!</b>")
	for _, a := range unlocked {
		sb.WriteString(fmt.Sprintf("\n🏅 %s — %s", escape(a.Title), escape(a.Description)))
	}
	return sb.String()
}
