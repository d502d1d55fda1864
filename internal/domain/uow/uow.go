package uow

import (
	"context"

	"finance-dashboard/internal/domain/debt"
	"finance-dashboard/internal/domain/goal"
	"finance-dashboard/internal/domain/transaction"
)

// Repos are bound to one transaction.
type Repos struct {
	Debts        debt.Repository
	Goals        goal.Repository
	Transactions transaction.Repository
}

type UnitOfWork interface {
	// fn's error rolls back; nil commits.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
