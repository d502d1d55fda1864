package debt

import (
	"time"

	"finance-dashboard/internal/domain/debt"

	"github.com/shopspring/decimal"
)

type CreateDebtInput struct {
	UserID           string
	Name             string
	Lender           string
	OriginalAmount   decimal.Decimal
	CurrentBalance   *decimal.Decimal // defaults to OriginalAmount
	InterestRate     decimal.Decimal
	InterestType     string
	PaymentFrequency string
	StartDate        time.Time
	DueDate          *time.Time
	MinimumPayment   decimal.Decimal
	Priority         string
	Notes            string
}

type DebtDTO struct {
	DebtID           string          `json:"debt_id"`
	Name             string          `json:"name"`
	Lender           string          `json:"lender"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	InterestType     string          `json:"interest_type"`
	PaymentFrequency string          `json:"payment_frequency"`
	StartDate        string          `json:"start_date"`
	DueDate          string          `json:"due_date,omitempty"`
	MinimumPayment   decimal.Decimal `json:"minimum_payment"`
	MonthlyInterest  decimal.Decimal `json:"monthly_interest"`
	Priority         string          `json:"priority"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type RecordPaymentInput struct {
	UserID string
	DebtID string
	Amount decimal.Decimal
	Date   time.Time
	Type   string
	Notes  string
}

type PaymentDTO struct {
	PaymentID        string           `json:"payment_id"`
	DebtID           string           `json:"debt_id"`
	DebtName         string           `json:"debt_name,omitempty"`
	Lender           string           `json:"lender,omitempty"`
	Amount           decimal.Decimal  `json:"amount"`
	Date             string           `json:"date"`
	Type             string           `json:"type"`
	Notes            string           `json:"notes,omitempty"`
	RemainingBalance *decimal.Decimal `json:"remaining_balance,omitempty"`
	Retired          bool             `json:"retired,omitempty"`
}

// ComparisonDTO holds both payoff orders computed from one load.
type ComparisonDTO struct {
	Avalanche debt.Strategy `json:"avalanche"`
	Snowball  debt.Strategy `json:"snowball"`
}

const dateLayout = "2006-01-02"

func toDTO(d *debt.Debt) DebtDTO {
	out := DebtDTO{
		DebtID:           d.DebtID,
		Name:             d.Name,
		Lender:           d.Lender,
		OriginalAmount:   d.OriginalAmount,
		CurrentBalance:   d.CurrentBalance,
		InterestRate:     d.InterestRate,
		InterestType:     string(d.InterestType),
		PaymentFrequency: string(d.PaymentFrequency),
		StartDate:        d.StartDate.Format(dateLayout),
		MinimumPayment:   d.MinimumPayment,
		MonthlyInterest:  debt.MonthlyInterest(*d),
		Priority:         string(d.Priority),
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
	}
	if d.DueDate != nil {
		out.DueDate = d.DueDate.Format(dateLayout)
	}
	return out
}

func paymentDTO(p debt.PaymentView) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID,
		DebtID:    p.PublicDebtID,
		DebtName:  p.DebtName,
		Lender:    p.Lender,
		Amount:    p.Amount,
		Date:      p.Date.Format(dateLayout),
		Type:      string(p.Type),
		Notes:     p.Notes,
	}
}
