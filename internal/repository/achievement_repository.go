package repository

import (
	"context"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

type AchievementRepository struct {
	store store.Store
}

func NewAchievementRepository(s store.Store) *AchievementRepository {
	return &AchievementRepository{store: s}
}

// GetAll falls back to the seed list when nothing usable is stored.
func (r *AchievementRepository) GetAll(ctx context.Context) []model.Achievement {
	achievements := store.Get(ctx, r.store, KeyAchievements, model.DefaultAchievements())
	if len(achievements) == 0 {
		return model.DefaultAchievements()
	}
	return achievements
}

func (r *AchievementRepository) SaveAll(ctx context.Context, achievements []model.Achievement) error {
	return store.Set(ctx, r.store, KeyAchievements, achievements)
}
