package repository

import (
	"context"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

// CategoryRepository owns the category collection of one profile.
type CategoryRepository struct {
	store store.Store
}

func NewCategoryRepository(s store.Store) *CategoryRepository {
	return &CategoryRepository{store: s}
}

// GetAll returns the stored categories. A missing, unreadable or empty
// collection yields the seed list, since goals cannot exist without one.
func (r *CategoryRepository) GetAll(ctx context.Context) []model.Category {
	categories := store.Get(ctx, r.store, KeyCategories, model.DefaultCategories())
	if len(categories) == 0 {
		return model.DefaultCategories()
	}
	return categories
}

func (r *CategoryRepository) SaveAll(ctx context.Context, categories []model.Category) error {
	return store.Set(ctx, r.store, KeyCategories, categories)
}

// FindByID looks a category up in the current collection.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, bool) {
	for _, c := range r.GetAll(ctx) {
		if c.ID == id {
			category := c
			return &category, true
		}
	}
	return nil, false
}
