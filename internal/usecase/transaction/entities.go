package transaction

import (
	"time"

	"finance-dashboard/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type CreateTransactionInput struct {
	UserID   string
	Date     time.Time
	Mode     string
	Category string
	Amount   decimal.Decimal
	Type     string
	Currency string
}

type TransactionDTO struct {
	TransactionID string          `json:"transaction_id"`
	Date          string          `json:"date"`
	Mode          string          `json:"mode"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Currency      string          `json:"currency"`
}

// OptionsDTO lists values seen so far, for form suggestions.
type OptionsDTO struct {
	Categories []string `json:"categories"`
	Modes      []string `json:"modes"`
}

func toDTO(t *transaction.Transaction) TransactionDTO {
	return TransactionDTO{
		TransactionID: t.TransactionID,
		Date:          t.Date.Format("2006-01-02"),
		Mode:          t.Mode,
		Category:      t.Category,
		Amount:        t.Amount,
		Type:          string(t.Kind),
		Currency:      t.Currency,
	}
}
