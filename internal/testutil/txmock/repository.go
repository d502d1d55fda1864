package txmock

import (
	"context"

	domain "finance-dashboard/internal/domain/transaction"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, t *domain.Transaction) error
	ListByUserFn     func(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListCategoriesFn func(ctx context.Context, userID string) ([]string, error)
	ListModesFn      func(ctx context.Context, userID string) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListCategories(ctx context.Context, userID string) ([]string, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListModes(ctx context.Context, userID string) ([]string, error) {
	if m.ListModesFn != nil {
		return m.ListModesFn(ctx, userID)
	}
	return nil, context.Canceled
}
