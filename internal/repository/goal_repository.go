package repository

import (
	"context"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

// GoalRepository is a raw accessor for the goal collection. Writers should go
// through service.GoalService so derived progress stays consistent.
type GoalRepository struct {
	store store.Store
}

func NewGoalRepository(s store.Store) *GoalRepository {
	return &GoalRepository{store: s}
}

// GetAll returns the stored goals. An explicit empty list is kept as is;
// only a missing, null or unreadable value brings back the seeds.
func (r *GoalRepository) GetAll(ctx context.Context) []model.Goal {
	return store.Get(ctx, r.store, KeyGoals, model.DefaultGoals())
}

func (r *GoalRepository) SaveAll(ctx context.Context, goals []model.Goal) error {
	return store.Set(ctx, r.store, KeyGoals, goals)
}
