package repository

import (
	"context"
	"fmt"
	"strings"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

// UserRepository handles registered accounts, their password hashes and the
// profile's current user.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Current returns the logged-in user of this profile, or nil.
func (r *UserRepository) Current(ctx context.Context) *model.User {
	return store.Get[*model.User](ctx, r.store, KeyCurrentUser, nil)
}

func (r *UserRepository) SetCurrent(ctx context.Context, user *model.User) error {
	return store.Set(ctx, r.store, KeyCurrentUser, user)
}

func (r *UserRepository) ClearCurrent(ctx context.Context) error {
	return store.Set[*model.User](ctx, r.store, KeyCurrentUser, nil)
}

func (r *UserRepository) ListAccounts(ctx context.Context) []model.User {
	return store.Get(ctx, r.store, KeyUsers, []model.User{})
}

func (r *UserRepository) SaveAccounts(ctx context.Context, users []model.User) error {
	return store.Set(ctx, r.store, KeyUsers, users)
}

// FindByEmail matches case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, bool) {
	for _, u := range r.ListAccounts(ctx) {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			user := u
			return &user, true
		}
	}
	return nil, false
}

// UpdateAccount replaces the stored account with the same ID.
func (r *UserRepository) UpdateAccount(ctx context.Context, user model.User) error {
	users := r.ListAccounts(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.SaveAccounts(ctx, users)
		}
	}
	return fmt.Errorf("account %s not found", user.ID)
}

// PasswordHashes maps user ID to a bcrypt hash.
func (r *UserRepository) PasswordHashes(ctx context.Context) map[string]string {
	hashes := store.Get(ctx, r.store, KeyUserPasswords, map[string]string{})
	if hashes == nil {
		hashes = map[string]string{}
	}
	return hashes
}

func (r *UserRepository) SavePasswordHashes(ctx context.Context, hashes map[string]string) error {
	return store.Set(ctx, r.store, KeyUserPasswords, hashes)
}

func (r *UserRepository) SaveMood(ctx context.Context, mood string) error {
	return store.Set(ctx, r.store, KeyTodayMood, mood)
}

func (r *UserRepository) Mood(ctx context.Context) string {
	return store.Get(ctx, r.store, KeyTodayMood, "")
}
