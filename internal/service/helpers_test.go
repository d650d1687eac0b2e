package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/store"
)

var testNow = time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

func newTestAuth() *AuthService {
	return NewAuthService(logger.Nop(), bcrypt.MinCost)
}

// loggedIn registers and logs in a user on a fresh in-memory profile.
func loggedIn(t *testing.T) (*Session, *store.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	root := store.NewMemoryStore()
	p := OpenProfile(root, 42)
	auth := newTestAuth()

	res, err := auth.Register(ctx, p, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}, testNow)
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)

	res, err = auth.Login(ctx, p, "ada@example.com", "secret123", testNow)
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
	require.NotNil(t, res.Session)
	return res.Session, root
}
