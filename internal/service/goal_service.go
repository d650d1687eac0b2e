package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/model"
	"inspire-tracker/internal/progress"
)

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrAmbiguousGoal   = errors.New("goal reference matches more than one goal")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidDueDate  = errors.New("due date must look like 2025-11-30")
	ErrInvalidPriority = errors.New("priority must be high, medium or low")
	ErrEmptyTitle      = errors.New("title is required")
)

// minGoalRefLen is the shortest ID prefix accepted as a goal reference.
const minGoalRefLen = 4

// GoalInput represents data required to create a goal.
type GoalInput struct {
	CategoryID  string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Tags        []string
}

// MutationResult is the derived state written by ApplyGoalMutation.
type MutationResult struct {
	Goals      []model.Goal
	Categories []model.Category
	User       model.User
	Unlocked   []model.Achievement
}

// GoalService is the only writer of goals. Every write recomputes category
// progress, the user's overall progress and achievements in the same step.
type GoalService struct {
	log *logger.Logger
}

func NewGoalService(log *logger.Logger) *GoalService {
	return &GoalService{log: log}
}

// ApplyGoalMutation loads the goals, applies mutate and persists goals,
// categories, the user and achievements atomically, derived entities last.
func (s *GoalService) ApplyGoalMutation(ctx context.Context, sess *Session, now time.Time, mutate func([]model.Goal) ([]model.Goal, error)) (MutationResult, error) {
	if err := requireSession(sess); err != nil {
		return MutationResult{}, err
	}

	var res MutationResult
	err := sess.Profile.Atomic(ctx, func(tx *Profile) error {
		goals, err := mutate(tx.Goals.GetAll(ctx))
		if err != nil {
			return err
		}
		if err := tx.Goals.SaveAll(ctx, goals); err != nil {
			return err
		}

		categories := progress.RecomputeAllCategories(tx.Categories.GetAll(ctx), goals)
		if err := tx.Categories.SaveAll(ctx, categories); err != nil {
			return err
		}

		user := sess.User
		user.OverallProgress = progress.OverallProgress(categories)
		user.Points = progress.Points(goals)
		user.Level = progress.Level(user.Points)
		if err := tx.Users.SetCurrent(ctx, &user); err != nil {
			return err
		}
		if err := tx.Users.UpdateAccount(ctx, user); err != nil {
			return err
		}

		achievements, unlocked := progress.Evaluate(&user, goals, categories, tx.Achievements.GetAll(ctx), now)
		if err := tx.Achievements.SaveAll(ctx, achievements); err != nil {
			return err
		}

		res = MutationResult{Goals: goals, Categories: categories, User: user, Unlocked: unlocked}
		return nil
	})
	if err != nil {
		return MutationResult{}, fmt.Errorf("apply goal mutation: %w", err)
	}

	sess.User = res.User
	for _, a := range res.Unlocked {
		s.log.Info("achievement unlocked", "chat", sess.Profile.ChatID, "user", sess.User.ID, "achievement", a.ID)
	}
	return res, nil
}

// AddGoal validates input and appends a new goal.
func (s *GoalService) AddGoal(ctx context.Context, sess *Session, input GoalInput, now time.Time) (model.Goal, MutationResult, error) {
	if err := requireSession(sess); err != nil {
		return model.Goal{}, MutationResult{}, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Goal{}, MutationResult{}, ErrEmptyTitle
	}
	priority := strings.ToLower(strings.TrimSpace(input.Priority))
	if !model.ValidPriority(priority) {
		return model.Goal{}, MutationResult{}, ErrInvalidPriority
	}
	if _, ok := sess.Profile.Categories.FindByID(ctx, input.CategoryID); !ok {
		return model.Goal{}, MutationResult{}, fmt.Errorf("%w %q", ErrUnknownCategory, input.CategoryID)
	}

	goal := model.Goal{
		ID:          uuid.NewString(),
		CategoryID:  input.CategoryID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Tags:        input.Tags,
	}
	if input.DueDate != nil {
		goal.DueDate = input.DueDate.Format("2006-01-02")
	}

	res, err := s.ApplyGoalMutation(ctx, sess, now, func(goals []model.Goal) ([]model.Goal, error) {
		return append(goals, goal), nil
	})
	if err != nil {
		return model.Goal{}, MutationResult{}, err
	}
	s.log.Info("goal created", "chat", sess.Profile.ChatID, "goal", goal.ID, "category", goal.CategoryID)
	return goal, res, nil
}

// ToggleGoal flips completion of the goal referenced by an ID or unique ID prefix.
func (s *GoalService) ToggleGoal(ctx context.Context, sess *Session, ref string, now time.Time) (model.Goal, MutationResult, error) {
	var toggled model.Goal
	res, err := s.ApplyGoalMutation(ctx, sess, now, func(goals []model.Goal) ([]model.Goal, error) {
		idx, err := FindGoal(goals, ref)
		if err != nil {
			return nil, err
		}
		out := append([]model.Goal(nil), goals...)
		out[idx].Completed = !out[idx].Completed
		toggled = out[idx]
		return out, nil
	})
	if err != nil {
		return model.Goal{}, MutationResult{}, err
	}
	s.log.Info("goal toggled", "chat", sess.Profile.ChatID, "goal", toggled.ID, "completed", toggled.Completed)
	return toggled, res, nil
}

// FindGoal resolves an exact ID or an unambiguous ID prefix to an index.
func FindGoal(goals []model.Goal, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, ErrGoalNotFound
	}
	for i, g := range goals {
		if g.ID == ref {
			return i, nil
		}
	}
	if len(ref) < minGoalRefLen {
		return -1, ErrGoalNotFound
	}
	found := -1
	for i, g := range goals {
		if strings.HasPrefix(g.ID, ref) {
			if found >= 0 {
				return -1, ErrAmbiguousGoal
			}
			found = i
		}
	}
	if found < 0 {
		return -1, ErrGoalNotFound
	}
	return found, nil
}

// List returns goals of one category, or all goals when categoryID is empty.
func (s *GoalService) List(ctx context.Context, p *Profile, categoryID string) []model.Goal {
	goals := p.Goals.GetAll(ctx)
	if categoryID == "" {
		return goals
	}
	out := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.CategoryID == categoryID {
			out = append(out, g)
		}
	}
	return out
}

func (s *GoalService) Stats(ctx context.Context, p *Profile, now time.Time) progress.Stats {
	return progress.GoalStats(p.Goals.GetAll(ctx), now)
}

func (s *GoalService) Pending(ctx context.Context, p *Profile, now time.Time, horizonDays int) []model.Goal {
	return progress.PendingGoals(p.Goals.GetAll(ctx), now, horizonDays)
}

func (s *GoalService) Categories(ctx context.Context, p *Profile) []model.Category {
	return p.Categories.GetAll(ctx)
}
