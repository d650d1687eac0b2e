package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/service"
)

const helpText = "ℹ️ <b>Commands</b>\n" +
	"<b>Account</b>\n" +
	"• /register name | email | password [| university]\n" +
	"• /login email password · /logout · /me\n" +
	"• /editprofile name | university\n" +
	"<b>Goals</b>\n" +
	"• /missions — improvement areas and their progress\n" +
	"• /goals [category] — list goals, tap to toggle\n" +
	"• /newgoal — add a goal step by step\n" +
	"• /toggle &lt;id&gt; — mark a goal done or not done\n" +
	"• /stats · /pending · /achievements\n" +
	"<b>Daily</b>\n" +
	"• /mood [happy|neutral|sad|excited|tired] — check in\n" +
	"• /quote · /motivation · /report\n" +
	"<b>CGPA</b>\n" +
	"• /cgpa — current and target CGPA\n" +
	"• /course name | credits | grade [| semester]\n" +
	"• /dropcourse &lt;id&gt; · /target &lt;gpa&gt; · /plan &lt;credits&gt;\n" +
	"• /cancel — stop the current input\n\n" +
	"Anything else you type goes to your study assistant."

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	if err := b.profiles.Add(ctx, chatID); err != nil {
		return err
	}

	if sess, ok := b.svc.Auth.Restore(ctx, b.profile(chatID)); ok {
		return b.sendText(chatID, fmt.Sprintf("👋 Welcome back, %s!\n\n%s", escape(sess.User.Name), helpText))
	}

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}
	text := fmt.Sprintf(
		"👋 Hi, %s!\n<b>I track your goals, missions and grades.</b>\n\n"+
			"Create an account with\n<code>/register Your Name | you@example.com | password</code>\n"+
			"or log in with <code>/login email password</code>.\n\nSee /help for everything else.",
		escape(name),
	)
	return b.sendText(chatID, text)
}

func (b *Bot) handleRegister(ctx context.Context, chatID int64, args string) error {
	in, err := parseRegisterArgs(args)
	if err != nil {
		return b.sendText(chatID, "Usage: <code>/register name | email | password [| university]</code>")
	}

	p := b.profile(chatID)
	now := b.now()
	res, err := b.svc.Auth.Register(ctx, p, in, now)
	if err != nil {
		return b.replyError(chatID, err)
	}
	if !res.Success {
		return b.sendText(chatID, "❗ "+escape(res.Message))
	}
	if err := b.profiles.Add(ctx, chatID); err != nil {
		return err
	}

	res, err = b.svc.Auth.Login(ctx, p, in.Email, in.Password, now)
	if err != nil {
		return b.replyError(chatID, err)
	}
	if !res.Success {
		return b.sendText(chatID, "❗ "+escape(res.Message))
	}
	return b.sendText(chatID, fmt.Sprintf("🎉 Account created. Welcome, %s!\nTry /missions or /newgoal.", escape(res.Session.User.Name)))
}

func (b *Bot) handleLogin(ctx context.Context, chatID int64, args string) error {
	email, password, err := parseLoginArgs(args)
	if err != nil {
		return b.sendText(chatID, "Usage: <code>/login email password</code>")
	}
	res, err := b.svc.Auth.Login(ctx, b.profile(chatID), email, password, b.now())
	if err != nil {
		return b.replyError(chatID, err)
	}
	if !res.Success {
		return b.sendText(chatID, "❗ "+escape(res.Message))
	}
	user := res.Session.User
	return b.sendText(chatID, fmt.Sprintf("✅ Logged in as <b>%s</b>. Overall progress: %d%%.", escape(user.Name), user.OverallProgress))
}

func (b *Bot) handleLogout(ctx context.Context, chatID int64) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	if err := b.svc.Auth.Logout(ctx, sess); err != nil {
		return b.replyError(chatID, err)
	}
	b.clearConversation(chatID)
	return b.sendText(chatID, "👋 Logged out.")
}

func (b *Bot) handleMe(ctx context.Context, chatID int64) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	return b.sendText(chatID, formatUser(sess.User, b.loc))
}

func (b *Bot) handleEditProfile(ctx context.Context, chatID int64, args string) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	fields := splitPipe(args)
	if args == "" || len(fields) > 2 {
		return b.sendText(chatID, "Usage: <code>/editprofile name | university</code> (leave a part empty to keep it)")
	}
	var university string
	if len(fields) == 2 {
		university = fields[1]
	}
	user, err := b.svc.Users.UpdateProfile(ctx, sess, fields[0], university)
	if err != nil {
		return b.replyError(chatID, err)
	}
	return b.sendText(chatID, "✏️ Profile updated.\n\n"+formatUser(user, b.loc))
}

func (b *Bot) handleMood(ctx context.Context, chatID int64, args string) error {
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	if args == "" {
		return b.sendWithReplyMarkup(chatID, "How are you feeling today?", moodKeyboard())
	}
	return b.checkIn(ctx, chatID, sess, args)
}

func (b *Bot) checkIn(ctx context.Context, chatID int64, sess *service.Session, mood string) error {
	user, err := b.svc.Users.CheckIn(ctx, sess, mood, b.now())
	if err != nil {
		return b.replyError(chatID, err)
	}
	text := fmt.Sprintf("%s Checked in as <b>%s</b>. Streak: %d day(s).", moodIcon(user.CurrentMood), user.CurrentMood, user.Streak)
	return b.sendText(chatID, text)
}

func formatUser(user model.User, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 <b>%s</b>\n", escape(user.Name)))
	sb.WriteString(fmt.Sprintf("✉️ %s\n", escape(user.Email)))
	if user.University != "" {
		sb.WriteString(fmt.Sprintf("🎓 %s\n", escape(user.University)))
	}
	sb.WriteString(fmt.Sprintf("📈 Overall progress: %d%% %s\n", user.OverallProgress, progressBar(user.OverallProgress)))
	if user.CurrentMood != "" {
		sb.WriteString(fmt.Sprintf("%s Mood: %s\n", moodIcon(user.CurrentMood), user.CurrentMood))
	}
	sb.WriteString(fmt.Sprintf("🔥 Streak: %d\n", user.Streak))
	sb.WriteString(fmt.Sprintf("⭐ Level %d · %d points\n", user.Level, user.Points))
	if user.LastCheckIn != nil {
		sb.WriteString(fmt.Sprintf("🕒 Last check-in: %s\n", user.LastCheckIn.In(loc).Format("2006-01-02 15:04")))
	}
	if user.JoinDate != nil {
		sb.WriteString(fmt.Sprintf("📅 Joined: %s\n", user.JoinDate.In(loc).Format("2006-01-02")))
	}
	return strings.TrimRight(sb.String(), "\n")
}
