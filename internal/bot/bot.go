package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"inspire-tracker/internal/advice"
	"inspire-tracker/internal/cgpa"
	"inspire-tracker/internal/config"
	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/repository"
	"inspire-tracker/internal/service"
	"inspire-tracker/internal/store"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageCategory
	stageTitle
	stageDescription
	stageDueDate
	stagePriority
)

const (
	cbTogglePrefix   = "toggle:"
	cbCategoryPrefix = "cat:"
	cbMoodPrefix     = "mood:"
)

// carriesPassword lists commands whose arguments include a password. The
// user's message is deleted once handled.
var carriesPassword = map[string]bool{
	"register": true,
	"login":    true,
}

type conversationState struct {
	stage conversationStage
	input service.GoalInput
}

// Services bundles what the bot talks to.
type Services struct {
	Auth     *service.AuthService
	Goals    *service.GoalService
	CGPA     *service.CGPAService
	Users    *service.UserService
	Reminder *service.ReminderService
}

// Bot aggregates Telegram API with services.
type Bot struct {
	api           *tgbotapi.BotAPI
	root          store.Store
	profiles      *repository.ProfileRepository
	svc           Services
	config        *config.Config
	log           *logger.Logger
	loc           *time.Location
	conversations map[int64]*conversationState
	mu            sync.Mutex
}

func New(cfg *config.Config, root store.Store, svc Services, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Info("bot authorized", "account", api.Self.UserName)

	return &Bot{
		api:           api,
		root:          root,
		profiles:      repository.NewProfileRepository(root),
		svc:           svc,
		config:        cfg,
		log:           log,
		loc:           cfg.Location(),
		conversations: make(map[int64]*conversationState),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				b.log.Error("handle callback", "err", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Error("handle message", "chat", update.Message.Chat.ID, "err", err)
			}
		}
	}

	return nil
}

func (b *Bot) now() time.Time {
	return time.Now().In(b.loc)
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	chatID := msg.Chat.ID

	if !msg.IsCommand() && isCancelInput(msg.Text) {
		b.clearConversation(chatID)
		return b.sendText(chatID, "⏪ Cancelled.")
	}

	if msg.IsCommand() {
		b.log.Debug("command", "chat", chatID, "command", msg.Command())
		return b.handleCommand(ctx, msg)
	}

	if b.hasConversation(chatID) {
		return b.handleConversation(ctx, msg)
	}

	if handled, err := b.handleMenuAlias(ctx, msg); handled {
		return err
	}

	return b.sendText(chatID, escape(advice.AssistantReply(msg.Text)))
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())
	if carriesPassword[msg.Command()] {
		defer b.deleteMessage(chatID, msg.MessageID)
	}

	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.sendText(chatID, helpText)
	case "register":
		return b.handleRegister(ctx, chatID, args)
	case "login":
		return b.handleLogin(ctx, chatID, args)
	case "logout":
		return b.handleLogout(ctx, chatID)
	case "me":
		return b.handleMe(ctx, chatID)
	case "editprofile":
		return b.handleEditProfile(ctx, chatID, args)
	case "missions":
		return b.handleMissions(ctx, chatID)
	case "goals":
		return b.sendGoalList(ctx, chatID, args)
	case "newgoal":
		return b.startNewGoalConversation(ctx, chatID)
	case "toggle":
		return b.toggleGoal(ctx, chatID, args)
	case "stats":
		return b.handleStats(ctx, chatID)
	case "pending":
		return b.handlePending(ctx, chatID)
	case "motivation":
		return b.handleMotivation(ctx, chatID)
	case "achievements":
		return b.handleAchievements(ctx, chatID)
	case "quote":
		return b.handleQuote(chatID)
	case "mood":
		return b.handleMood(ctx, chatID, args)
	case "cgpa":
		return b.handleCGPA(ctx, chatID)
	case "course":
		return b.handleAddCourse(ctx, chatID, args)
	case "dropcourse":
		return b.handleDropCourse(ctx, chatID, args)
	case "target":
		return b.handleTarget(ctx, chatID, args)
	case "plan":
		return b.handlePlan(ctx, chatID, args)
	case "report":
		return b.handleReport(ctx, chatID)
	case "cancel":
		b.clearConversation(chatID)
		return b.sendText(chatID, "⏪ Cancelled.")
	default:
		return b.sendText(chatID, "Unknown command. See /help.")
	}
}

// SendDailyReports sends a summary to every chat that pressed /start.
func (b *Bot) SendDailyReports(ctx context.Context) error {
	now := b.now()
	for _, chatID := range b.profiles.List(ctx) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text := b.svc.Reminder.DailySummary(ctx, service.OpenProfile(b.root, chatID), now)
		if err := b.sendText(chatID, text); err != nil {
			b.log.Warn("send daily report", "chat", chatID, "err", err)
		}
	}
	return nil
}

func (b *Bot) profile(chatID int64) *service.Profile {
	return service.OpenProfile(b.root, chatID)
}

// session returns the logged-in session for the chat, or nil after telling
// the user how to log in.
func (b *Bot) session(ctx context.Context, chatID int64) (*service.Session, error) {
	if sess, ok := b.svc.Auth.Restore(ctx, b.profile(chatID)); ok {
		return sess, nil
	}
	return nil, b.sendText(chatID, "🔒 Please /login or /register first.")
}

// replyError shows validation errors to the user and returns anything else.
func (b *Bot) replyError(chatID int64, err error) error {
	if isUserError(err) {
		return b.sendText(chatID, "❗ "+escape(userMessage(err)))
	}
	if sendErr := b.sendText(chatID, "Something went wrong, please try again."); sendErr != nil {
		b.log.Warn("send error reply", "chat", chatID, "err", sendErr)
	}
	return err
}

var userErrors = []error{
	service.ErrNotLoggedIn,
	service.ErrGoalNotFound,
	service.ErrAmbiguousGoal,
	service.ErrUnknownCategory,
	service.ErrInvalidDueDate,
	service.ErrInvalidPriority,
	service.ErrEmptyTitle,
	service.ErrCourseNotFound,
	service.ErrInvalidTarget,
	service.ErrInvalidMood,
	cgpa.ErrInvalidGrade,
	cgpa.ErrInvalidCredits,
	cgpa.ErrMissingName,
}

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// userMessage strips wrapping added on the way up and keeps the sentinel text.
func userMessage(err error) string {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.log.Warn("delete message", "chat", chatID, "err", err)
	}
}

func (b *Bot) ackCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.log.Warn("callback ack", "err", err)
	}
}

func (b *Bot) setConversation(chatID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[chatID] = state
}

func (b *Bot) getConversation(chatID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[chatID]
}

func (b *Bot) hasConversation(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[chatID]
	return ok
}

func (b *Bot) clearConversation(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, chatID)
}

func escape(s string) string {
	return html.EscapeString(s)
}
