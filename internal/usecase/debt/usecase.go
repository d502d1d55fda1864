package debt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-dashboard/internal/domain/debt"
	"finance-dashboard/internal/domain/event"
	"finance-dashboard/internal/domain/uow"
	"finance-dashboard/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   debt.Repository
	uow    uow.UnitOfWork
	events event.Publisher
}

// NewUsecase: events may be nil.
func NewUsecase(repo debt.Repository, tx uow.UnitOfWork, events event.Publisher) *Usecase {
	return &Usecase{repo: repo, uow: tx, events: events}
}

func (u *Usecase) Create(ctx context.Context, in CreateDebtInput) (*DebtDTO, error) {
	d := &debt.Debt{
		DebtID:           id.NewID32(),
		UserID:           in.UserID,
		Name:             strings.TrimSpace(in.Name),
		Lender:           strings.TrimSpace(in.Lender),
		OriginalAmount:   in.OriginalAmount,
		CurrentBalance:   in.OriginalAmount,
		InterestRate:     in.InterestRate,
		InterestType:     debt.InterestType(orDefault(in.InterestType, string(debt.InterestSimple))),
		PaymentFrequency: debt.Frequency(orDefault(in.PaymentFrequency, string(debt.FrequencyMonthly))),
		StartDate:        in.StartDate.UTC(),
		DueDate:          in.DueDate,
		MinimumPayment:   in.MinimumPayment,
		Priority:         debt.Priority(orDefault(in.Priority, string(debt.PriorityMedium))),
		Notes:            in.Notes,
	}
	if in.CurrentBalance != nil {
		d.CurrentBalance = *in.CurrentBalance
	}
	if d.StartDate.IsZero() {
		d.StartDate = today()
	}

	switch {
	case d.Name == "":
		return nil, fmt.Errorf("%w: name is required", debt.ErrInvalidInput)
	case !d.InterestType.Valid():
		return nil, fmt.Errorf("%w: unknown interest type %q", debt.ErrInvalidInput, d.InterestType)
	case !d.PaymentFrequency.Valid():
		return nil, fmt.Errorf("%w: unknown payment frequency %q", debt.ErrInvalidInput, d.PaymentFrequency)
	case !d.Priority.Valid():
		return nil, fmt.Errorf("%w: unknown priority %q", debt.ErrInvalidInput, d.Priority)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	dto := toDTO(d)
	return &dto, nil
}

// ListActive returns debts with a positive balance, highest priority first.
func (u *Usecase) ListActive(ctx context.Context, userID string) ([]DebtDTO, error) {
	debts, err := u.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DebtDTO, 0, len(debts))
	for i := range debts {
		out = append(out, toDTO(&debts[i]))
	}
	return out, nil
}

func (u *Usecase) RecordPayment(ctx context.Context, in RecordPaymentInput) (*PaymentDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", debt.ErrInvalidInput)
	}
	ptype := debt.PaymentType(orDefault(in.Type, string(debt.PaymentRegular)))
	if !ptype.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", debt.ErrInvalidInput, ptype)
	}
	date := in.Date.UTC()
	if date.IsZero() {
		date = today()
	}

	var (
		dto     *PaymentDTO
		retired bool
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Debts.GetByDebtIDForUpdate(ctx, in.UserID, in.DebtID)
		if err != nil {
			return notFound(err)
		}
		if !d.Active() {
			return debt.ErrRetired
		}

		p := &debt.Payment{
			PaymentID: id.NewID32(),
			DebtID:    d.ID, // numeric FK
			UserID:    in.UserID,
			Amount:    in.Amount,
			Date:      date,
			Type:      ptype,
			Notes:     in.Notes,
		}
		if err := r.Debts.CreatePayment(ctx, p); err != nil {
			return err
		}

		if d.ApplyPayment(p.Amount) {
			slog.WarnContext(ctx, "payment exceeds outstanding balance, flooring at zero",
				"debt_id", d.DebtID, "amount", p.Amount.String())
		}
		if err := r.Debts.Save(ctx, d); err != nil {
			return err
		}
		retired = !d.Active()

		remaining := d.CurrentBalance
		dto = &PaymentDTO{
			PaymentID:        p.PaymentID,
			DebtID:           d.DebtID, // public id
			DebtName:         d.Name,
			Lender:           d.Lender,
			Amount:           p.Amount,
			Date:             p.Date.Format(dateLayout),
			Type:             string(p.Type),
			Notes:            p.Notes,
			RemainingBalance: &remaining,
			Retired:          retired,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if retired {
		event.Emit(ctx, u.events, event.New(event.DebtRetired, in.UserID, dto.DebtID))
	}
	return dto, nil
}

// ListPayments lists a user's payments, newest first. An empty debtID lists all.
func (u *Usecase) ListPayments(ctx context.Context, userID, debtID string) ([]PaymentDTO, error) {
	var numericID uint64
	if debtID != "" {
		d, err := u.repo.GetByDebtID(ctx, userID, debtID)
		if err != nil {
			return nil, notFound(err)
		}
		numericID = d.ID
	}
	views, err := u.repo.ListPayments(ctx, userID, numericID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(views))
	for _, v := range views {
		out = append(out, paymentDTO(v))
	}
	return out, nil
}

func (u *Usecase) Strategy(ctx context.Context, userID string, method debt.Method) (debt.Strategy, error) {
	if !method.Valid() {
		return debt.Strategy{}, fmt.Errorf("%w: unknown method %q", debt.ErrInvalidInput, method)
	}
	debts, err := u.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return debt.Strategy{}, err
	}
	return debt.Rank(method, debts)
}

func (u *Usecase) Compare(ctx context.Context, userID string) (*ComparisonDTO, error) {
	debts, err := u.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	av, err := debt.Avalanche(debts)
	if err != nil {
		return nil, err
	}
	sb, err := debt.Snowball(debts)
	if err != nil {
		return nil, err
	}
	return &ComparisonDTO{Avalanche: av, Snowball: sb}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return debt.ErrNotFound
	}
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
