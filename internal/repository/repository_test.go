package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspire-tracker/internal/config"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/store"
)

func TestCategoryRepositorySeedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(store.NewMemoryStore())

	cats := repo.GetAll(ctx)
	require.Len(t, cats, 5)
	assert.Equal(t, "academics", cats[0].ID)

	cats[0].Progress = 100
	require.NoError(t, repo.SaveAll(ctx, cats))
	c, ok := repo.FindByID(ctx, "academics")
	require.True(t, ok)
	assert.Equal(t, 100, c.Progress)

	_, ok = repo.FindByID(ctx, "cooking")
	assert.False(t, ok)
}

func TestGoalRepositoryFallsBackOnCorruptData(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Save(ctx, KeyGoals, []byte("{not json")))

	goals := NewGoalRepository(s).GetAll(ctx)
	assert.Equal(t, model.DefaultGoals(), goals)
}

func TestCollectionsReseedWhenEmptyOrNull(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"[]", "null"} {
		t.Run(raw, func(t *testing.T) {
			s := store.NewMemoryStore()
			require.NoError(t, s.Save(ctx, KeyCategories, []byte(raw)))
			require.NoError(t, s.Save(ctx, KeyAchievements, []byte(raw)))

			assert.Equal(t, model.DefaultCategories(), NewCategoryRepository(s).GetAll(ctx))
			assert.Equal(t, model.DefaultAchievements(), NewAchievementRepository(s).GetAll(ctx))
		})
	}
}

func TestGoalRepositoryKeepsEmptyList(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewGoalRepository(s)

	require.NoError(t, s.Save(ctx, KeyGoals, []byte("[]")))
	assert.Empty(t, repo.GetAll(ctx))

	require.NoError(t, s.Save(ctx, KeyGoals, []byte("null")))
	assert.Equal(t, model.DefaultGoals(), repo.GetAll(ctx))
}

func TestUserRepositoryNullPasswordHashes(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Save(ctx, KeyUserPasswords, []byte("null")))

	hashes := NewUserRepository(s).PasswordHashes(ctx)
	require.NotNil(t, hashes)
	assert.NotPanics(t, func() { hashes["u1"] = "hash" })
}

func TestUserRepositoryAccounts(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryStore())

	assert.Nil(t, repo.Current(ctx))
	assert.Empty(t, repo.ListAccounts(ctx))

	ada := model.User{ID: "u1", Name: "Ada", Email: "Ada@Example.com"}
	require.NoError(t, repo.SaveAccounts(ctx, []model.User{ada}))

	found, ok := repo.FindByEmail(ctx, " ada@example.com ")
	require.True(t, ok)
	assert.Equal(t, "u1", found.ID)

	ada.OverallProgress = 55
	require.NoError(t, repo.UpdateAccount(ctx, ada))
	assert.Equal(t, 55, repo.ListAccounts(ctx)[0].OverallProgress)
	assert.Error(t, repo.UpdateAccount(ctx, model.User{ID: "ghost"}))

	require.NoError(t, repo.SetCurrent(ctx, &ada))
	require.NotNil(t, repo.Current(ctx))
	require.NoError(t, repo.ClearCurrent(ctx))
	assert.Nil(t, repo.Current(ctx))

	require.NoError(t, repo.SavePasswordHashes(ctx, map[string]string{"u1": "hash"}))
	assert.Equal(t, "hash", repo.PasswordHashes(ctx)["u1"])

	require.NoError(t, repo.SaveMood(ctx, model.MoodHappy))
	assert.Equal(t, model.MoodHappy, repo.Mood(ctx))
}

func TestCGPARepositoryDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewCGPARepository(store.NewMemoryStore())

	rec := repo.Get(ctx)
	assert.Empty(t, rec.Courses)

	rec.Courses = append(rec.Courses, model.Course{ID: "c1", Name: "Calculus", Credits: 4, Grade: "A"})
	rec.CurrentCGPA = 4
	require.NoError(t, repo.Save(ctx, rec))
	assert.Equal(t, rec, repo.Get(ctx))
}

func TestAchievementRepositorySeeds(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepository(store.NewMemoryStore())
	achievements := repo.GetAll(ctx)
	require.Len(t, achievements, 5)
	for _, a := range achievements {
		assert.False(t, a.Unlocked, a.ID)
	}
}

func TestProfileRepositoryAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(store.NewMemoryStore())

	require.NoError(t, repo.Add(ctx, 42))
	require.NoError(t, repo.Add(ctx, 7))
	require.NoError(t, repo.Add(ctx, 42))
	assert.Equal(t, []int64{42, 7}, repo.List(ctx))
}

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StoreBackend: config.BackendSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "data", "inspire.db"),
	}

	s, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	repo := NewProfileRepository(s)
	require.NoError(t, repo.Add(ctx, 99))
	assert.Equal(t, []int64{99}, repo.List(ctx))
}

func TestOpenStoreMemory(t *testing.T) {
	s, closeFn, err := OpenStore(context.Background(), config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.IsType(t, &store.MemoryStore{}, s)
}
