package debt

import "context"

type Repository interface {
	Create(ctx context.Context, d *Debt) error
	GetByDebtID(ctx context.Context, userID, debtID string) (*Debt, error)
	// Locks the row until the surrounding transaction ends.
	GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*Debt, error)
	// Only debts with a positive balance, highest priority first, then highest rate.
	ListActiveByUser(ctx context.Context, userID string) ([]Debt, error)
	Save(ctx context.Context, d *Debt) error

	CreatePayment(ctx context.Context, p *Payment) error
	// debtID 0 means every debt of the user. Newest first.
	ListPayments(ctx context.Context, userID string, debtID uint64) ([]PaymentView, error)
}
