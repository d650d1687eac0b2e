package repository

import (
	"context"

	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

type CGPARepository struct {
	store store.Store
}

func NewCGPARepository(s store.Store) *CGPARepository {
	return &CGPARepository{store: s}
}

// Get returns the stored record or an empty one.
func (r *CGPARepository) Get(ctx context.Context) model.CGPARecord {
	rec := store.Get(ctx, r.store, KeyCGPA, model.CGPARecord{})
	if rec.Courses == nil {
		rec.Courses = []model.Course{}
	}
	return rec
}

func (r *CGPARepository) Save(ctx context.Context, rec model.CGPARecord) error {
	return store.Set(ctx, r.store, KeyCGPA, rec)
}
