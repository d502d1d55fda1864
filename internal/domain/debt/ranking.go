package debt

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Method names a payoff ordering.
type Method string

const (
	// Highest interest rate first; minimizes total interest paid.
	MethodAvalanche Method = "avalanche"
	// Lowest balance first; clears whole debts sooner.
	MethodSnowball Method = "snowball"
)

func (m Method) Valid() bool { return m == MethodAvalanche || m == MethodSnowball }

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// RankedDebt is one row of a payoff order.
type RankedDebt struct {
	Position        int             `json:"position"`
	DebtID          string          `json:"debt_id"`
	Name            string          `json:"name"`
	Lender          string          `json:"lender"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	MinimumPayment  decimal.Decimal `json:"minimum_payment"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
}

// Strategy is the outcome of ranking a user's active debts.
type Strategy struct {
	Method              Method          `json:"method"`
	TotalDebt           decimal.Decimal `json:"total_debt"`
	TotalMinimumPayment decimal.Decimal `json:"total_minimum_payment"`
	Head                *RankedDebt     `json:"head,omitempty"`
	Order               []RankedDebt    `json:"order"`
}

// Empty reports the "no debts" result.
func (s Strategy) Empty() bool { return len(s.Order) == 0 }

// Avalanche orders debts by interest rate, highest first.
func Avalanche(debts []Debt) (Strategy, error) { return Rank(MethodAvalanche, debts) }

// Snowball orders debts by current balance, lowest first.
func Snowball(debts []Debt) (Strategy, error) { return Rank(MethodSnowball, debts) }

// Rank validates debts and orders them by method. The input slice is not
// modified. Debts with a zero balance are retired and left out. Equal keys keep
// their input order, so the result is deterministic for a given input.
func Rank(method Method, debts []Debt) (Strategy, error) {
	if !method.Valid() {
		return Strategy{}, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, method)
	}

	active := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if err := d.Validate(); err != nil {
			return Strategy{}, err
		}
		if d.Active() {
			active = append(active, d)
		}
	}

	out := Strategy{
		Method:              method,
		TotalDebt:           decimal.Zero,
		TotalMinimumPayment: decimal.Zero,
		Order:               []RankedDebt{},
	}
	if len(active) == 0 {
		return out, nil
	}

	switch method {
	case MethodAvalanche:
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].InterestRate.GreaterThan(active[j].InterestRate)
		})
	case MethodSnowball:
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].CurrentBalance.LessThan(active[j].CurrentBalance)
		})
	}

	out.Order = make([]RankedDebt, len(active))
	for i, d := range active {
		out.TotalDebt = out.TotalDebt.Add(d.CurrentBalance)
		out.TotalMinimumPayment = out.TotalMinimumPayment.Add(d.MinimumPayment)
		out.Order[i] = RankedDebt{
			Position:        i + 1,
			DebtID:          d.DebtID,
			Name:            d.Name,
			Lender:          d.Lender,
			InterestRate:    d.InterestRate,
			CurrentBalance:  d.CurrentBalance,
			MinimumPayment:  d.MinimumPayment,
			MonthlyInterest: MonthlyInterest(d),
		}
	}
	head := out.Order[0]
	out.Head = &head
	return out, nil
}

// MonthlyInterest is one month of nominal interest on the current balance, in cents.
func MonthlyInterest(d Debt) decimal.Decimal {
	return d.CurrentBalance.Mul(d.InterestRate).Div(hundred).Div(monthsPerYear).Round(2)
}
