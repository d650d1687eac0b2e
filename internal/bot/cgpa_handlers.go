package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (b *Bot) handleCGPA(ctx context.Context, chatID int64) error {
	summary := b.svc.CGPA.Summary(ctx, b.profile(chatID))
	rec := summary.Record

	var sb strings.Builder
	sb.WriteString("🎓 <b>CGPA tracker</b>\n")
	sb.WriteString(fmt.Sprintf("• Current: <b>%.2f</b> over %d credits\n", rec.CurrentCGPA, summary.Credits))
	if rec.TargetCGPA > 0 {
		sb.WriteString(fmt.Sprintf("• Target: <b>%.2f</b> · %s %.0f%%\n", rec.TargetCGPA, progressBar(int(summary.TargetProgress)), summary.TargetProgress))
	} else {
		sb.WriteString("• Target: not set, use <code>/target 3.5</code>\n")
	}

	if len(rec.Courses) > 0 {
		sb.WriteString("\n📚 <b>Courses</b>\n")
		for _, c := range rec.Courses {
			sb.WriteString(fmt.Sprintf("• %s · %d cr · <b>%s</b>", escape(c.Name), c.Credits, escape(c.Grade)))
			if c.Semester != "" {
				sb.WriteString(fmt.Sprintf(" · %s", escape(c.Semester)))
			}
			sb.WriteString(fmt.Sprintf(" <code>%s</code>\n", shortID(c.ID)))
		}
	} else {
		sb.WriteString("\nNo courses yet. Add one with <code>/course Calculus | 4 | A- | Fall 2024</code>\n")
	}

	if len(summary.Recommendations) > 0 {
		sb.WriteString("\n💡 <b>Recommendations</b>\n")
		for _, tip := range summary.Recommendations {
			sb.WriteString("• " + escape(tip) + "\n")
		}
	}
	return b.sendText(chatID, strings.TrimSpace(sb.String()))
}

func (b *Bot) handleAddCourse(ctx context.Context, chatID int64, args string) error {
	course, err := parseCourseArgs(args)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("%s\nUsage: <code>/course name | credits | grade [| semester]</code>", escape(err.Error())))
	}
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	added, err := b.svc.CGPA.AddCourse(ctx, sess, course)
	if err != nil {
		return b.replyError(chatID, err)
	}
	rec := sess.Profile.CGPA.Get(ctx)
	return b.sendText(chatID, fmt.Sprintf("📘 Added <b>%s</b> (%s, %d cr). CGPA is now <b>%.2f</b>.", escape(added.Name), added.Grade, added.Credits, rec.CurrentCGPA))
}

func (b *Bot) handleDropCourse(ctx context.Context, chatID int64, args string) error {
	if args == "" {
		return b.sendText(chatID, "Usage: <code>/dropcourse &lt;id&gt;</code>. IDs are shown in /cgpa.")
	}
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	removed, err := b.svc.CGPA.DeleteCourse(ctx, sess, args)
	if err != nil {
		return b.replyError(chatID, err)
	}
	rec := sess.Profile.CGPA.Get(ctx)
	return b.sendText(chatID, fmt.Sprintf("🗑 Removed <b>%s</b>. CGPA is now <b>%.2f</b>.", escape(removed.Name), rec.CurrentCGPA))
}

func (b *Bot) handleTarget(ctx context.Context, chatID int64, args string) error {
	target, err := strconv.ParseFloat(strings.ReplaceAll(args, ",", "."), 64)
	if err != nil {
		return b.sendText(chatID, "Usage: <code>/target 3.5</code>")
	}
	sess, err := b.session(ctx, chatID)
	if sess == nil {
		return err
	}
	if err := b.svc.CGPA.SetTarget(ctx, sess, target); err != nil {
		return b.replyError(chatID, err)
	}
	return b.handleCGPA(ctx, chatID)
}

func (b *Bot) handlePlan(ctx context.Context, chatID int64, args string) error {
	credits, err := strconv.Atoi(args)
	if err != nil {
		return b.sendText(chatID, "Usage: <code>/plan 15</code> with the credits you plan to take.")
	}
	return b.sendText(chatID, "🧮 "+escape(b.svc.CGPA.Plan(ctx, b.profile(chatID), credits)))
}
