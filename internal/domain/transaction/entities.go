package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid transaction input")

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool { return k == KindIncome || k == KindExpense }

const DefaultCurrency = "INR"

// Table: transactions
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string          `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	UserID        string          `gorm:"size:32;index:idx_transactions_user_date,priority:1" json:"user_id"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2" json:"date"`
	Mode          string          `gorm:"size:64;not null" json:"mode"`
	Category      string          `gorm:"size:64;not null" json:"category"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind          Kind            `gorm:"column:type;size:16;not null" json:"type"`
	Currency      string          `gorm:"size:3;default:'INR'" json:"currency"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

func (t Transaction) Validate() error {
	switch {
	case !t.Kind.Valid():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, t.Kind)
	case !t.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	case strings.TrimSpace(t.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	case strings.TrimSpace(t.Mode) == "":
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	case len(t.Currency) != 3:
		return fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidInput)
	}
	return nil
}
