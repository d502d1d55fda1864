package transaction

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
	Count         int             `json:"transaction_count"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type MonthlyTrend struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

func Summarize(txs []Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, t := range txs {
		switch t.Kind {
		case KindIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case KindExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
		s.Count++
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// ExpensesByCategory sums expenses per category, largest first.
func ExpensesByCategory(txs []Transaction) []CategoryTotal {
	sums := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Kind != KindExpense {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}
	out := make([]CategoryTotal, 0, len(sums))
	for c, v := range sums {
		out = append(out, CategoryTotal{Category: c, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlyTrends buckets income and expenses by calendar month, oldest first.
func MonthlyTrends(txs []Transaction) []MonthlyTrend {
	idx := map[string]int{}
	out := []MonthlyTrend{}
	for _, t := range txs {
		month := t.Date.Format("2006-01")
		i, ok := idx[month]
		if !ok {
			i = len(out)
			idx[month] = i
			out = append(out, MonthlyTrend{Month: month, Income: decimal.Zero, Expenses: decimal.Zero})
		}
		switch t.Kind {
		case KindIncome:
			out[i].Income = out[i].Income.Add(t.Amount)
		case KindExpense:
			out[i].Expenses = out[i].Expenses.Add(t.Amount)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

type DailyActivity struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Income       decimal.Decimal `json:"daily_income"`
	Expenses     decimal.Decimal `json:"daily_expense"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

type CategoryMonth struct {
	Category string          `json:"category"`
	Month    string          `json:"month"` // YYYY-MM
	Amount   decimal.Decimal `json:"total_amount"`
	Count    int             `json:"transaction_count"`
}

type ModeStats struct {
	Mode    string          `json:"mode"`
	Count   int             `json:"transaction_count"`
	Total   decimal.Decimal `json:"total_amount"`
	Average decimal.Decimal `json:"avg_amount"`
	Min     decimal.Decimal `json:"min_amount"`
	Max     decimal.Decimal `json:"max_amount"`
}

type WeekdayExpense struct {
	DayOfWeek int             `json:"day_of_week"` // 1 = Sunday
	DayName   string          `json:"day_name"`
	Amount    decimal.Decimal `json:"total_expense"`
	Count     int             `json:"transaction_count"`
}

// DailyTotals totals income and expenses per calendar day, oldest first.
func DailyTotals(txs []Transaction) []DailyActivity {
	idx := map[string]int{}
	out := []DailyActivity{}
	for _, t := range txs {
		day := t.Date.Format("2006-01-02")
		i, ok := idx[day]
		if !ok {
			i = len(out)
			idx[day] = i
			out = append(out, DailyActivity{Date: day, Income: decimal.Zero, Expenses: decimal.Zero})
		}
		switch t.Kind {
		case KindIncome:
			out[i].Income = out[i].Income.Add(t.Amount)
			out[i].IncomeCount++
		case KindExpense:
			out[i].Expenses = out[i].Expenses.Add(t.Amount)
			out[i].ExpenseCount++
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ExpensesByCategoryMonth groups expenses by category and month. Rows are
// ordered by month, then by amount descending within a month.
func ExpensesByCategoryMonth(txs []Transaction) []CategoryMonth {
	type key struct{ cat, month string }
	idx := map[key]int{}
	out := []CategoryMonth{}
	for _, t := range txs {
		if t.Kind != KindExpense {
			continue
		}
		k := key{t.Category, t.Date.Format("2006-01")}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, CategoryMonth{Category: k.cat, Month: k.month, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
		out[i].Count++
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PaymentModeStats covers every transaction regardless of type, largest total
// first. Average is rounded to 2 places.
func PaymentModeStats(txs []Transaction) []ModeStats {
	idx := map[string]int{}
	out := []ModeStats{}
	for _, t := range txs {
		i, ok := idx[t.Mode]
		if !ok {
			i = len(out)
			idx[t.Mode] = i
			out = append(out, ModeStats{Mode: t.Mode, Total: decimal.Zero, Min: t.Amount, Max: t.Amount})
		}
		m := &out[i]
		m.Count++
		m.Total = m.Total.Add(t.Amount)
		if t.Amount.LessThan(m.Min) {
			m.Min = t.Amount
		}
		if t.Amount.GreaterThan(m.Max) {
			m.Max = t.Amount
		}
	}
	for i := range out {
		out[i].Average = out[i].Total.Div(decimal.NewFromInt(int64(out[i].Count))).Round(2)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Mode < out[j].Mode
	})
	return out
}

// ExpensesByWeekday sums expenses per day of week, Sunday first. Days with no
// expenses are omitted.
func ExpensesByWeekday(txs []Transaction) []WeekdayExpense {
	var days [7]*WeekdayExpense
	for _, t := range txs {
		if t.Kind != KindExpense {
			continue
		}
		wd := t.Date.Weekday()
		if days[wd] == nil {
			days[wd] = &WeekdayExpense{DayOfWeek: int(wd) + 1, DayName: wd.String(), Amount: decimal.Zero}
		}
		days[wd].Amount = days[wd].Amount.Add(t.Amount)
		days[wd].Count++
	}
	out := []WeekdayExpense{}
	for _, w := range days {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}
