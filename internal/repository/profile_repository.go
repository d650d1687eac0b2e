package repository

import (
	"context"

	"inspire-tracker/internal/store"
)

// ProfileRepository tracks which chats own a profile, for scheduled reports.
// It must be given the root store, not a scoped one.
type ProfileRepository struct {
	store store.Store
}

func NewProfileRepository(root store.Store) *ProfileRepository {
	return &ProfileRepository{store: root}
}

func (r *ProfileRepository) List(ctx context.Context) []int64 {
	return store.Get(ctx, r.store, KeyProfiles, []int64{})
}

// Add registers chatID once.
func (r *ProfileRepository) Add(ctx context.Context, chatID int64) error {
	ids := r.List(ctx)
	for _, id := range ids {
		if id == chatID {
			return nil
		}
	}
	return store.Set(ctx, r.store, KeyProfiles, append(ids, chatID))
}
