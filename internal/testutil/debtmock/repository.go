package debtmock

import (
	"context"

	domain "finance-dashboard/internal/domain/debt"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error; reads default to context.Canceled.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Debt) error
	GetByDebtIDFn          func(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	GetByDebtIDForUpdateFn func(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	ListActiveByUserFn     func(ctx context.Context, userID string) ([]domain.Debt, error)
	SaveFn                 func(ctx context.Context, d *domain.Debt) error
	CreatePaymentFn        func(ctx context.Context, p *domain.Payment) error
	ListPaymentsFn         func(ctx context.Context, userID string, debtID uint64) ([]domain.PaymentView, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Debt) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDebtID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	if m.GetByDebtIDFn != nil {
		return m.GetByDebtIDFn(ctx, userID, debtID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	if m.GetByDebtIDForUpdateFn != nil {
		return m.GetByDebtIDForUpdateFn(ctx, userID, debtID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	if m.ListActiveByUserFn != nil {
		return m.ListActiveByUserFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Debt) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListPayments(ctx context.Context, userID string, debtID uint64) ([]domain.PaymentView, error) {
	if m.ListPaymentsFn != nil {
		return m.ListPaymentsFn(ctx, userID, debtID)
	}
	return nil, context.Canceled
}
