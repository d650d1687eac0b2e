package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/progress"
)

const minPasswordLen = 6

// AuthResult reports the outcome of a register or login attempt. Business
// failures are never returned as errors.
type AuthResult struct {
	Success bool
	Message string
	Session *Session
}

func failed(msg string) AuthResult {
	return AuthResult{Success: false, Message: msg}
}

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	University string
}

// AuthService registers accounts and manages sessions for a profile.
type AuthService struct {
	log        *logger.Logger
	bcryptCost int
}

func NewAuthService(log *logger.Logger, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{log: log, bcryptCost: bcryptCost}
}

// Register creates an account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, p *Profile, in RegisterInput, now time.Time) (AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return failed("Please enter your name."), nil
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil {
		return failed("Please enter a valid email address."), nil
	}
	email := addr.Address
	if len(in.Password) < minPasswordLen {
		return failed(fmt.Sprintf("Password must be at least %d characters.", minPasswordLen)), nil
	}
	if _, exists := p.Users.FindByEmail(ctx, email); exists {
		return failed("Email already in use. Please use a different email or login."), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	joined := now
	user := model.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		University: strings.TrimSpace(in.University),
		JoinDate:   &joined,
		Level:      progress.Level(0),
	}

	err = p.Atomic(ctx, func(tx *Profile) error {
		users := append(tx.Users.ListAccounts(ctx), user)
		if err := tx.Users.SaveAccounts(ctx, users); err != nil {
			return err
		}
		hashes := tx.Users.PasswordHashes(ctx)
		hashes[user.ID] = string(hash)
		return tx.Users.SavePasswordHashes(ctx, hashes)
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	s.log.Info("user registered", "chat", p.ChatID, "user", user.ID)
	return AuthResult{Success: true}, nil
}

// Login checks credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, p *Profile, email, password string, now time.Time) (AuthResult, error) {
	user, ok := p.Users.FindByEmail(ctx, normalizeEmail(email))
	if !ok {
		return failed("User not found. Please check your email or sign up."), nil
	}
	hash, ok := p.Users.PasswordHashes(ctx)[user.ID]
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		s.log.Warn("login rejected", "chat", p.ChatID, "user", user.ID)
		return failed("Incorrect password. Please try again."), nil
	}

	checkIn := now
	user.LastCheckIn = &checkIn
	user.OverallProgress = progress.OverallProgress(p.Categories.GetAll(ctx))

	err := p.Atomic(ctx, func(tx *Profile) error {
		if err := tx.Users.UpdateAccount(ctx, *user); err != nil {
			return err
		}
		return tx.Users.SetCurrent(ctx, user)
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}

	s.log.Info("user logged in", "chat", p.ChatID, "user", user.ID)
	return AuthResult{Success: true, Session: &Session{Profile: p, User: *user}}, nil
}

// Restore rebuilds the session persisted for the profile, if any.
func (s *AuthService) Restore(ctx context.Context, p *Profile) (*Session, bool) {
	user := p.Users.Current(ctx)
	if user == nil || user.ID == "" {
		return nil, false
	}
	return &Session{Profile: p, User: *user}, true
}

// Logout ends the session.
func (s *AuthService) Logout(ctx context.Context, sess *Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if err := sess.Profile.Users.ClearCurrent(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info("user logged out", "chat", sess.Profile.ChatID, "user", sess.User.ID)
	sess.User = model.User{}
	return nil
}

// normalizeEmail reduces "Name <addr>" to addr. Unparseable input is only trimmed.
func normalizeEmail(raw string) string {
	raw = strings.TrimSpace(raw)
	if addr, err := mail.ParseAddress(raw); err == nil {
		return addr.Address
	}
	return raw
}
