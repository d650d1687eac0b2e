package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/model"
)

var ErrInvalidMood = errors.New("mood must be happy, neutral, sad, excited or tired")

// UserService covers profile edits and the daily mood check-in.
type UserService struct {
	log *logger.Logger
}

func NewUserService(log *logger.Logger) *UserService {
	return &UserService{log: log}
}

// CheckIn records today's mood and advances the streak: +1 after a check-in
// yesterday, unchanged for a repeat today, reset to 1 otherwise.
func (s *UserService) CheckIn(ctx context.Context, sess *Session, mood string, now time.Time) (model.User, error) {
	if err := requireSession(sess); err != nil {
		return model.User{}, err
	}
	mood = strings.ToLower(strings.TrimSpace(mood))
	if !model.ValidMood(mood) {
		return model.User{}, ErrInvalidMood
	}

	user := sess.User
	user.CurrentMood = mood
	user.Streak = nextStreak(user.Streak, user.LastCheckIn, now)
	checkIn := now
	user.LastCheckIn = &checkIn

	if err := s.save(ctx, sess, user, func(tx *Profile) error {
		return tx.Users.SaveMood(ctx, mood)
	}); err != nil {
		return model.User{}, fmt.Errorf("check in: %w", err)
	}
	s.log.Info("mood check-in", "chat", sess.Profile.ChatID, "user", user.ID, "mood", mood, "streak", user.Streak)
	return user, nil
}

// UpdateProfile edits the display fields. Empty values leave a field as is.
func (s *UserService) UpdateProfile(ctx context.Context, sess *Session, name, university string) (model.User, error) {
	if err := requireSession(sess); err != nil {
		return model.User{}, err
	}
	user := sess.User
	if v := strings.TrimSpace(name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(university); v != "" {
		user.University = v
	}
	if err := s.save(ctx, sess, user, nil); err != nil {
		return model.User{}, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, sess *Session, user model.User, extra func(tx *Profile) error) error {
	err := sess.Profile.Atomic(ctx, func(tx *Profile) error {
		if err := tx.Users.UpdateAccount(ctx, user); err != nil {
			return err
		}
		if err := tx.Users.SetCurrent(ctx, &user); err != nil {
			return err
		}
		if extra != nil {
			return extra(tx)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sess.User = user
	return nil
}

func nextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	lastDay := dayStart(last.In(now.Location()))
	today := dayStart(now)
	switch {
	case lastDay.Equal(today):
		if current < 1 {
			return 1
		}
		return current
	case lastDay.AddDate(0, 0, 1).Equal(today):
		return current + 1
	default:
		return 1
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
