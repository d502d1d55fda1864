package goal

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func mkGoal(id, target, current string) Goal {
	return Goal{
		GoalID:        id,
		Name:          "goal " + id,
		TargetAmount:  d(target),
		CurrentAmount: d(current),
		Category:      CategoryOther,
		Priority:      PriorityMedium,
		Status:        StatusActive,
	}
}

func withDate(g Goal, daysFromToday int) Goal {
	t := time.Date(2026, 3, 10+daysFromToday, 0, 0, 0, 0, time.UTC)
	g.TargetDate = &t
	return g
}

func hasRec(in Insights, code string) bool {
	for _, r := range in.Recommendations {
		if r.Code == code {
			return true
		}
	}
	return false
}

func TestComputeInsights_Example(t *testing.T) {
	a := mkGoal("a", "1000", "1000")
	a.Status = StatusCompleted
	b := mkGoal("b", "2000", "500")

	in, err := ComputeInsights([]Goal{a, b}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.OverallProgress.Equal(d("50")) {
		t.Fatalf("overall = %s, want 50", in.OverallProgress)
	}
	if !in.AverageProgress.Equal(d("62.5")) {
		t.Fatalf("average = %s, want 62.5", in.AverageProgress)
	}
	if in.Total != 2 || in.Active != 1 || in.Completed != 1 {
		t.Fatalf("counts = %d/%d/%d", in.Total, in.Active, in.Completed)
	}
	if !in.TotalTarget.Equal(d("3000")) || !in.TotalCurrent.Equal(d("1500")) {
		t.Fatalf("sums = %s/%s", in.TotalTarget, in.TotalCurrent)
	}
	if len(in.Recommendations) != 0 {
		t.Fatalf("unexpected recommendations: %+v", in.Recommendations)
	}
}

func TestComputeInsights_AllFunded(t *testing.T) {
	goals := []Goal{mkGoal("a", "10", "10"), mkGoal("b", "2500.50", "2500.50")}
	in, err := ComputeInsights(goals, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.OverallProgress.Equal(d("100")) {
		t.Fatalf("overall = %s, want 100", in.OverallProgress)
	}
	if !hasRec(in, RecommendGreatProgress) {
		t.Fatalf("great_progress missing: %+v", in.Recommendations)
	}
}

func TestComputeInsights_ZeroTargetExcludedFromAverage(t *testing.T) {
	goals := []Goal{mkGoal("a", "0", "0"), mkGoal("b", "100", "80")}
	in, err := ComputeInsights(goals, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.AverageProgress.Equal(d("80")) {
		t.Fatalf("average = %s, want 80", in.AverageProgress)
	}

	in, err = ComputeInsights([]Goal{mkGoal("z", "0", "0")}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.OverallProgress.IsZero() || !in.AverageProgress.IsZero() {
		t.Fatalf("zero-target only: overall %s average %s", in.OverallProgress, in.AverageProgress)
	}
}

func TestComputeInsights_OverTargetClamped(t *testing.T) {
	g := mkGoal("a", "100", "250")
	in, err := ComputeInsights([]Goal{g}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.OverallProgress.Equal(d("100")) || !in.AverageProgress.Equal(d("100")) {
		t.Fatalf("overall %s average %s, want 100", in.OverallProgress, in.AverageProgress)
	}
	if !g.Progress().Equal(d("100")) || !g.CurrentAmount.Equal(d("250")) {
		t.Fatalf("progress %s current %s", g.Progress(), g.CurrentAmount)
	}
}

func TestComputeInsights_UpcomingWindow(t *testing.T) {
	paused := withDate(mkGoal("paused", "100", "0"), 5)
	paused.Status = StatusPaused
	goals := []Goal{
		withDate(mkGoal("d30", "100", "10"), 30),
		withDate(mkGoal("d31", "100", "10"), 31),
		withDate(mkGoal("today", "100", "50"), 0),
		withDate(mkGoal("past", "100", "10"), -1),
		mkGoal("nodate", "100", "10"),
		paused,
	}
	in, err := ComputeInsights(goals, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if len(in.Upcoming) != 2 {
		t.Fatalf("upcoming = %+v, want today and d30", in.Upcoming)
	}
	if in.Upcoming[0].GoalID != "today" || in.Upcoming[0].DaysRemaining != 0 {
		t.Fatalf("first upcoming = %+v", in.Upcoming[0])
	}
	if in.Upcoming[1].GoalID != "d30" || in.Upcoming[1].DaysRemaining != 30 {
		t.Fatalf("second upcoming = %+v", in.Upcoming[1])
	}
	if !in.Upcoming[0].Progress.Equal(d("50")) || !in.Upcoming[0].Remaining.Equal(d("50")) {
		t.Fatalf("today progress %s remaining %s", in.Upcoming[0].Progress, in.Upcoming[0].Remaining)
	}
}

func TestComputeInsights_Recommendations(t *testing.T) {
	var goals []Goal
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		goals = append(goals, mkGoal(id, "100", "10"))
	}
	in, err := ComputeInsights(goals, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !hasRec(in, RecommendFocusHighPriority) || !hasRec(in, RecommendTooManyActive) {
		t.Fatalf("recommendations = %+v", in.Recommendations)
	}
	if hasRec(in, RecommendGreatProgress) {
		t.Fatalf("great_progress must not fire at 10%%")
	}

	// exactly 5 active and exactly 50% average fire nothing
	goals = goals[:5]
	for i := range goals {
		goals[i].CurrentAmount = d("50")
	}
	in, _ = ComputeInsights(goals, today)
	if len(in.Recommendations) != 0 {
		t.Fatalf("boundary values fired: %+v", in.Recommendations)
	}
}

func TestComputeInsights_RecommendationsUseUnroundedValues(t *testing.T) {
	// 49.996% rounds to 50.00 for display but is still below 50
	in, err := ComputeInsights([]Goal{mkGoal("low", "100000", "49996")}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.AverageProgress.Equal(d("50")) || !hasRec(in, RecommendFocusHighPriority) {
		t.Fatalf("average %s recs %+v", in.AverageProgress, in.Recommendations)
	}

	// 80.004% rounds to 80.00 for display but is still above 80
	in, err = ComputeInsights([]Goal{mkGoal("high", "100000", "80004")}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if !in.OverallProgress.Equal(d("80")) || !hasRec(in, RecommendGreatProgress) {
		t.Fatalf("overall %s recs %+v", in.OverallProgress, in.Recommendations)
	}
}

func TestComputeInsights_UnnamedGoals(t *testing.T) {
	a := mkGoal("a", "1000", "250")
	a.Name = ""
	in, err := ComputeInsights([]Goal{a}, today)
	if err != nil {
		t.Fatalf("unnamed goal rejected: %v", err)
	}
	if !in.OverallProgress.Equal(d("25")) {
		t.Fatalf("overall = %s, want 25", in.OverallProgress)
	}
}

func TestComputeInsights_Breakdowns(t *testing.T) {
	a := mkGoal("a", "100", "0")
	a.Category, a.Priority = CategoryVacation, PriorityHigh
	b := mkGoal("b", "300", "0")
	b.Category, b.Priority = CategoryCar, PriorityHigh
	c := mkGoal("c", "50", "0")
	c.Category, c.Priority = CategoryVacation, PriorityLow

	in, err := ComputeInsights([]Goal{a, b, c}, today)
	if err != nil {
		t.Fatalf("ComputeInsights: %v", err)
	}
	if len(in.ByCategory) != 2 || in.ByCategory[0].Tag != "car" || !in.ByCategory[1].Target.Equal(d("150")) {
		t.Fatalf("by category = %+v", in.ByCategory)
	}
	if len(in.ByPriority) != 2 || in.ByPriority[0].Tag != "high" || !in.ByPriority[0].Target.Equal(d("400")) {
		t.Fatalf("by priority = %+v", in.ByPriority)
	}
}

func TestComputeInsights_Empty(t *testing.T) {
	in, err := ComputeInsights(nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Empty() || len(in.Recommendations) != 0 || !in.OverallProgress.IsZero() {
		t.Fatalf("expected empty insights, got %+v", in)
	}
}

func TestComputeInsights_InvalidInput(t *testing.T) {
	_, err := ComputeInsights([]Goal{mkGoal("a", "100", "10"), mkGoal("b", "-1", "0")}, today)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	_, err = ComputeInsights([]Goal{mkGoal("c", "100", "-0.01")}, today)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestAddContributionAndStatus(t *testing.T) {
	g := mkGoal("a", "100", "40")
	if done := g.AddContribution(d("50")); done || g.Status != StatusActive {
		t.Fatalf("goal completed early: %+v", g)
	}
	if done := g.AddContribution(d("10")); !done || g.Status != StatusCompleted {
		t.Fatalf("goal should complete at target: %+v", g)
	}
	if !g.Closed() {
		t.Fatal("completed goal should be closed")
	}
	if err := g.SetStatus(StatusActive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reopen: want ErrInvalidTransition, got %v", err)
	}

	p := mkGoal("p", "100", "0")
	if err := p.SetStatus(StatusPaused); err != nil || p.Status != StatusPaused {
		t.Fatalf("pause: %v %s", err, p.Status)
	}
	if err := p.SetStatus(StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("manual complete: want ErrInvalidTransition, got %v", err)
	}
	if err := p.SetStatus(StatusCancelled); err != nil || !p.Closed() {
		t.Fatalf("cancel: %v", err)
	}
}
