package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"inspire-tracker/internal/model"
)

const (
	btnSkip           = "⏭️ Skip"
	btnCancel         = "⏪ Cancel"
	menuLabelNewGoal  = "➕ New goal"
	menuLabelGoals    = "🎯 Goals"
	menuLabelMissions = "🧭 Missions"
	menuLabelStats    = "📊 Stats"
	menuLabelCGPA     = "🎓 CGPA"
	menuLabelHelp     = "ℹ️ Help"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelNewGoal),
			tgbotapi.NewKeyboardButton(menuLabelGoals),
			tgbotapi.NewKeyboardButton(menuLabelMissions),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelStats),
			tgbotapi.NewKeyboardButton(menuLabelCGPA),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnSkip)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func priorityKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(priorityIcon(model.PriorityHigh)+" High"),
			tgbotapi.NewKeyboardButton(priorityIcon(model.PriorityMedium)+" Medium"),
			tgbotapi.NewKeyboardButton(priorityIcon(model.PriorityLow)+" Low"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

// categoryKeyboard lays out two missions per row.
func categoryKeyboard(categories []model.Category) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for _, c := range categories {
		row = append(row, tgbotapi.NewKeyboardButton(categoryIcon(c.ID)+" "+c.Name))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func moodKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, m := range []string{model.MoodHappy, model.MoodExcited, model.MoodNeutral, model.MoodTired, model.MoodSad} {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(moodIcon(m), cbMoodPrefix+m))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func isSkipInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == "-" || value == strings.ToLower(btnSkip) || value == "skip"
}

func isCancelInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancel) || value == "cancel"
}

// progressBar renders pct as ten blocks.
func progressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := (pct + 5) / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled)
}

func categoryIcon(id string) string {
	switch id {
	case "academics":
		return "📚"
	case "skills":
		return "🏅"
	case "fitness":
		return "🏃"
	case "career":
		return "💼"
	case "mental":
		return "🧘"
	default:
		return "🏷️"
	}
}

func moodIcon(mood string) string {
	switch mood {
	case model.MoodHappy:
		return "😊"
	case model.MoodExcited:
		return "🤩"
	case model.MoodNeutral:
		return "😐"
	case model.MoodTired:
		return "😴"
	case model.MoodSad:
		return "😢"
	default:
		return "🙂"
	}
}

func priorityIcon(priority string) string {
	switch priority {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	case model.PriorityLow:
		return "🟢"
	default:
		return ""
	}
}

func shortTitle(title string, maxLen int) string {
	clean := strings.TrimSpace(title)
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// shortID is the prefix users type to reference a goal or course.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
