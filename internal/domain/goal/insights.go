package goal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// UpcomingWindowDays bounds the deadline lookahead, inclusive on both ends.
const UpcomingWindowDays = 30

const (
	RecommendFocusHighPriority = "focus_high_priority"
	RecommendTooManyActive     = "too_many_active_goals"
	RecommendGreatProgress     = "great_progress"
)

var (
	lowAverageThreshold  = decimal.NewFromInt(50)
	highOverallThreshold = decimal.NewFromInt(80)
)

const maxActiveGoals = 5

type TagTotal struct {
	Tag    string          `json:"tag"`
	Target decimal.Decimal `json:"target"`
}

type UpcomingGoal struct {
	GoalID        string          `json:"goal_id"`
	Name          string          `json:"name"`
	TargetDate    time.Time       `json:"target_date"`
	DaysRemaining int             `json:"days_remaining"`
	Progress      decimal.Decimal `json:"progress"`
	Remaining     decimal.Decimal `json:"remaining"`
}

type Recommendation struct {
	Code    string `json:"code"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

type Insights struct {
	Total           int              `json:"total"`
	Active          int              `json:"active"`
	Completed       int              `json:"completed"`
	TotalTarget     decimal.Decimal  `json:"total_target"`
	TotalCurrent    decimal.Decimal  `json:"total_current"`
	OverallProgress decimal.Decimal  `json:"overall_progress"`
	AverageProgress decimal.Decimal  `json:"average_progress"`
	ByCategory      []TagTotal       `json:"by_category"`
	ByPriority      []TagTotal       `json:"by_priority"`
	Upcoming        []UpcomingGoal   `json:"upcoming"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Empty reports the "no goals" result.
func (in Insights) Empty() bool { return in.Total == 0 }

func emptyInsights() Insights {
	return Insights{
		TotalTarget:     decimal.Zero,
		TotalCurrent:    decimal.Zero,
		OverallProgress: decimal.Zero,
		AverageProgress: decimal.Zero,
		ByCategory:      []TagTotal{},
		ByPriority:      []TagTotal{},
		Upcoming:        []UpcomingGoal{},
		Recommendations: []Recommendation{},
	}
}

// ComputeInsights summarizes a user's goals as of today. It does not modify goals.
// AverageProgress is the mean of each goal's progress capped at 100; goals with
// no target are left out. Recommendations use the unrounded percentages.
func ComputeInsights(goals []Goal, today time.Time) (Insights, error) {
	out := emptyInsights()
	if len(goals) == 0 {
		return out, nil
	}
	for _, g := range goals {
		if err := g.Validate(); err != nil {
			return emptyInsights(), err
		}
	}

	byCategory := map[string]decimal.Decimal{}
	byPriority := map[string]decimal.Decimal{}
	progressSum := decimal.Zero
	counted := 0
	day := dateOf(today)

	for _, g := range goals {
		out.Total++
		switch g.Status {
		case StatusActive:
			out.Active++
		case StatusCompleted:
			out.Completed++
		}

		out.TotalTarget = out.TotalTarget.Add(g.TargetAmount)
		out.TotalCurrent = out.TotalCurrent.Add(g.CurrentAmount)
		byCategory[string(g.Category)] = byCategory[string(g.Category)].Add(g.TargetAmount)
		byPriority[string(g.Priority)] = byPriority[string(g.Priority)].Add(g.TargetAmount)

		if g.TargetAmount.IsPositive() {
			progressSum = progressSum.Add(g.Progress())
			counted++
		}

		if g.Status == StatusActive && g.TargetDate != nil {
			days := daysBetween(day, dateOf(*g.TargetDate))
			if days >= 0 && days <= UpcomingWindowDays {
				out.Upcoming = append(out.Upcoming, UpcomingGoal{
					GoalID:        g.GoalID,
					Name:          g.Name,
					TargetDate:    *g.TargetDate,
					DaysRemaining: days,
					Progress:      g.Progress().Round(2),
					Remaining:     g.Remaining(),
				})
			}
		}
	}

	overall, average := decimal.Zero, decimal.Zero
	if out.TotalTarget.IsPositive() {
		overall = capped(out.TotalCurrent.Div(out.TotalTarget).Mul(hundred))
	}
	if counted > 0 {
		average = progressSum.Div(decimal.NewFromInt(int64(counted)))
	}
	out.OverallProgress = overall.Round(2)
	out.AverageProgress = average.Round(2)
	out.ByCategory = sortedTotals(byCategory)
	out.ByPriority = sortedTotals(byPriority)
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].DaysRemaining < out.Upcoming[j].DaysRemaining
	})
	out.Recommendations = recommend(average, overall, out.Active)
	return out, nil
}

func recommend(average, overall decimal.Decimal, active int) []Recommendation {
	recs := []Recommendation{}
	if average.LessThan(lowAverageThreshold) {
		recs = append(recs, Recommendation{
			Code:    RecommendFocusHighPriority,
			Level:   "info",
			Message: "Average goal progress is below 50%. Focus on your high-priority goals first.",
		})
	}
	if active > maxActiveGoals {
		recs = append(recs, Recommendation{
			Code:    RecommendTooManyActive,
			Level:   "warning",
			Message: "You have more than 5 active goals. Consider pausing some to make faster progress.",
		})
	}
	if overall.GreaterThan(highOverallThreshold) {
		recs = append(recs, Recommendation{
			Code:    RecommendGreatProgress,
			Level:   "success",
			Message: "Great progress! You are over 80% of the way to your combined targets.",
		})
	}
	return recs
}

func sortedTotals(m map[string]decimal.Decimal) []TagTotal {
	out := make([]TagTotal, 0, len(m))
	for tag, v := range m {
		out = append(out, TagTotal{Tag: tag, Target: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b; both must be dateOf values.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
