package goalmock

import (
	"context"

	domain "finance-dashboard/internal/domain/goal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, g *domain.Goal) error
	GetByGoalIDFn          func(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	GetByGoalIDForUpdateFn func(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListByUserFn           func(ctx context.Context, userID string) ([]domain.Goal, error)
	SaveFn                 func(ctx context.Context, g *domain.Goal) error
	CreateContributionFn   func(ctx context.Context, c *domain.Contribution) error
	ListContributionsFn    func(ctx context.Context, userID string, goalID uint64) ([]domain.ContributionView, error)
}

func (m *Repo) Create(ctx context.Context, g *domain.Goal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *Repo) GetByGoalID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	if m.GetByGoalIDFn != nil {
		return m.GetByGoalIDFn(ctx, userID, goalID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByGoalIDForUpdate(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	if m.GetByGoalIDForUpdateFn != nil {
		return m.GetByGoalIDForUpdateFn(ctx, userID, goalID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, g *domain.Goal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *Repo) CreateContribution(ctx context.Context, c *domain.Contribution) error {
	if m.CreateContributionFn != nil {
		return m.CreateContributionFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListContributions(ctx context.Context, userID string, goalID uint64) ([]domain.ContributionView, error) {
	if m.ListContributionsFn != nil {
		return m.ListContributionsFn(ctx, userID, goalID)
	}
	return nil, context.Canceled
}
