package service

import (
	"context"
	"errors"
	"strconv"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/repository"
	"inspire-tracker/internal/store"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Profile is the state owned by one chat: a scoped store and the
// repositories over it.
type Profile struct {
	ChatID       int64
	store        store.Store
	Categories   *repository.CategoryRepository
	Goals        *repository.GoalRepository
	Achievements *repository.AchievementRepository
	Users        *repository.UserRepository
	CGPA         *repository.CGPARepository
}

// OpenProfile scopes root to the given chat.
func OpenProfile(root store.Store, chatID int64) *Profile {
	return newProfile(chatID, store.Scoped(root, "chat:"+strconv.FormatInt(chatID, 10)))
}

func newProfile(chatID int64, s store.Store) *Profile {
	return &Profile{
		ChatID:       chatID,
		store:        s,
		Categories:   repository.NewCategoryRepository(s),
		Goals:        repository.NewGoalRepository(s),
		Achievements: repository.NewAchievementRepository(s),
		Users:        repository.NewUserRepository(s),
		CGPA:         repository.NewCGPARepository(s),
	}
}

// Atomic runs fn against a transactional view of the profile.
func (p *Profile) Atomic(ctx context.Context, fn func(tx *Profile) error) error {
	return p.store.Atomic(ctx, func(tx store.Store) error {
		return fn(newProfile(p.ChatID, tx))
	})
}

// Session is a logged-in user within a profile. It exists between login and
// logout and is passed explicitly to everything that needs the user.
type Session struct {
	Profile *Profile
	User    model.User
}

func requireSession(sess *Session) error {
	if sess == nil || sess.Profile == nil || sess.User.ID == "" {
		return ErrNotLoggedIn
	}
	return nil
}
