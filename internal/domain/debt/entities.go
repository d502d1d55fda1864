package debt

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput = errors.New("invalid debt input")
	ErrNotFound     = errors.New("debt not found")
	// ErrRetired is returned when a payment targets a debt whose balance already reached zero.
	ErrRetired = errors.New("debt already paid off")
)

type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyDaily   Frequency = "daily"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type PaymentType string

const (
	PaymentRegular PaymentType = "regular"
	PaymentExtra   PaymentType = "extra"
	PaymentLumpSum PaymentType = "lump_sum"
)

func (t InterestType) Valid() bool { return t == InterestSimple || t == InterestCompound }

func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyWeekly || f == FrequencyDaily
}

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

func (p PaymentType) Valid() bool {
	return p == PaymentRegular || p == PaymentExtra || p == PaymentLumpSum
}

// Table: debts
type Debt struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	DebtID           string          `gorm:"size:32;uniqueIndex:ux_debts_debt_id" json:"debt_id"`
	UserID           string          `gorm:"size:32;index:idx_debts_user_balance" json:"user_id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Lender           string          `gorm:"size:255;not null" json:"lender"`
	OriginalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"original_amount"`
	CurrentBalance   decimal.Decimal `gorm:"type:decimal(15,2);not null;index:idx_debts_user_balance" json:"current_balance"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	InterestType     InterestType    `gorm:"size:16;default:'simple'" json:"interest_type"`
	PaymentFrequency Frequency       `gorm:"size:16;default:'monthly'" json:"payment_frequency"`
	StartDate        time.Time       `gorm:"type:date;not null" json:"start_date"`
	DueDate          *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	MinimumPayment   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"minimum_payment"`
	Priority         Priority        `gorm:"size:16;default:'medium'" json:"priority"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Debt) TableName() string { return "debts" }

// Active reports whether the debt still takes part in ranking.
func (d Debt) Active() bool { return d.CurrentBalance.IsPositive() }

// Validate checks the record invariants. Zero balances are valid (retired debt).
func (d Debt) Validate() error {
	label := d.Name
	if label == "" {
		label = d.DebtID
	}
	switch {
	case d.OriginalAmount.IsNegative():
		return fmt.Errorf("%w: debt %q: original amount is negative", ErrInvalidInput, label)
	case d.CurrentBalance.IsNegative():
		return fmt.Errorf("%w: debt %q: balance is negative", ErrInvalidInput, label)
	case d.CurrentBalance.GreaterThan(d.OriginalAmount):
		return fmt.Errorf("%w: debt %q: balance exceeds original amount", ErrInvalidInput, label)
	case d.InterestRate.IsNegative():
		return fmt.Errorf("%w: debt %q: interest rate is negative", ErrInvalidInput, label)
	case d.MinimumPayment.IsNegative():
		return fmt.Errorf("%w: debt %q: minimum payment is negative", ErrInvalidInput, label)
	}
	return nil
}

// ApplyPayment decrements the balance, floored at zero, and reports whether
// the amount exceeded what was owed.
func (d *Debt) ApplyPayment(amount decimal.Decimal) (overpaid bool) {
	next := d.CurrentBalance.Sub(amount)
	if next.IsNegative() {
		d.CurrentBalance = decimal.Zero
		return true
	}
	d.CurrentBalance = next
	return false
}

// Table: debt_payments
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string          `gorm:"size:32;uniqueIndex:ux_debt_payments_payment_id" json:"payment_id"`
	DebtID    uint64          `gorm:"not null;index" json:"-"`
	UserID    string          `gorm:"size:32;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	Type      PaymentType     `gorm:"size:16;default:'regular'" json:"type"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "debt_payments" }

// PaymentView is a payment joined with the debt it paid down.
type PaymentView struct {
	Payment
	PublicDebtID string `gorm:"column:public_debt_id" json:"debt_id"`
	DebtName     string `gorm:"column:debt_name" json:"debt_name"`
	Lender       string `gorm:"column:lender" json:"lender"`
}
