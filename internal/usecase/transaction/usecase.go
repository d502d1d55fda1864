package transaction

import (
	"context"
	"strings"
	"time"

	"finance-dashboard/internal/domain/transaction"
	"finance-dashboard/pkg/id"
)

type Usecase struct{ repo transaction.Repository }

func NewUsecase(r transaction.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateTransactionInput) (*TransactionDTO, error) {
	t := &transaction.Transaction{
		TransactionID: id.NewID32(),
		UserID:        in.UserID,
		Date:          in.Date.UTC(),
		Mode:          strings.TrimSpace(in.Mode),
		Category:      strings.TrimSpace(in.Category),
		Amount:        in.Amount,
		Kind:          transaction.Kind(strings.ToLower(in.Type)),
		Currency:      strings.ToUpper(in.Currency),
	}
	if t.Currency == "" {
		t.Currency = transaction.DefaultCurrency
	}
	if t.Date.IsZero() {
		y, m, d := time.Now().UTC().Date()
		t.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, userID string) ([]TransactionDTO, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(txs))
	for i := range txs {
		out = append(out, toDTO(&txs[i]))
	}
	return out, nil
}

func (u *Usecase) Summary(ctx context.Context, userID string) (transaction.Summary, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return transaction.Summary{}, err
	}
	return transaction.Summarize(txs), nil
}

func (u *Usecase) Categories(ctx context.Context, userID string) ([]transaction.CategoryTotal, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.ExpensesByCategory(txs), nil
}

func (u *Usecase) Trends(ctx context.Context, userID string) ([]transaction.MonthlyTrend, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.MonthlyTrends(txs), nil
}

func (u *Usecase) Daily(ctx context.Context, userID string) ([]transaction.DailyActivity, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.DailyTotals(txs), nil
}

func (u *Usecase) CategoryMonths(ctx context.Context, userID string) ([]transaction.CategoryMonth, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.ExpensesByCategoryMonth(txs), nil
}

func (u *Usecase) Modes(ctx context.Context, userID string) ([]transaction.ModeStats, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.PaymentModeStats(txs), nil
}

func (u *Usecase) Weekdays(ctx context.Context, userID string) ([]transaction.WeekdayExpense, error) {
	txs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transaction.ExpensesByWeekday(txs), nil
}

func (u *Usecase) Options(ctx context.Context, userID string) (*OptionsDTO, error) {
	cats, err := u.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	modes, err := u.repo.ListModes(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	if modes == nil {
		modes = []string{}
	}
	return &OptionsDTO{Categories: cats, Modes: modes}, nil
}
