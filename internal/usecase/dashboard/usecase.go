package dashboard

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/domain/debt"
	"finance-dashboard/internal/domain/goal"
	"finance-dashboard/internal/domain/transaction"

	"golang.org/x/sync/errgroup"
)

type TransactionSummarizer interface {
	Summary(ctx context.Context, userID string) (transaction.Summary, error)
}

type DebtStrategist interface {
	Strategy(ctx context.Context, userID string, method debt.Method) (debt.Strategy, error)
}

type GoalInsighter interface {
	Insights(ctx context.Context, userID string, today time.Time) (goal.Insights, error)
}

type Overview struct {
	Summary      transaction.Summary `json:"summary"`
	DebtStrategy debt.Strategy       `json:"debt_strategy"`
	Goals        goal.Insights       `json:"goals"`
}

type Usecase struct {
	txs   TransactionSummarizer
	debts DebtStrategist
	goals GoalInsighter
}

func NewUsecase(txs TransactionSummarizer, debts DebtStrategist, goals GoalInsighter) *Usecase {
	return &Usecase{txs: txs, debts: debts, goals: goals}
}

// Overview loads the three dashboard panels concurrently. The first failure
// cancels the others.
func (u *Usecase) Overview(ctx context.Context, userID string, today time.Time) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := u.txs.Summary(gctx, userID)
		if err != nil {
			return fmt.Errorf("transaction summary: %w", err)
		}
		out.Summary = s
		return nil
	})
	g.Go(func() error {
		s, err := u.debts.Strategy(gctx, userID, debt.MethodAvalanche)
		if err != nil {
			return fmt.Errorf("debt strategy: %w", err)
		}
		out.DebtStrategy = s
		return nil
	})
	g.Go(func() error {
		in, err := u.goals.Insights(gctx, userID, today)
		if err != nil {
			return fmt.Errorf("goal insights: %w", err)
		}
		out.Goals = in
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
