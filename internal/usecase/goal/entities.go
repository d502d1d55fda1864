package goal

import (
	"time"

	"finance-dashboard/internal/domain/goal"

	"github.com/shopspring/decimal"
)

type CreateGoalInput struct {
	UserID        string
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Category      string
	Priority      string
	TargetDate    *time.Time
	StartDate     time.Time
	MonthlyTarget *decimal.Decimal
	Notes         string
}

type GoalDTO struct {
	GoalID        string           `json:"goal_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	TargetAmount  decimal.Decimal  `json:"target_amount"`
	CurrentAmount decimal.Decimal  `json:"current_amount"`
	Remaining     decimal.Decimal  `json:"remaining"`
	Progress      decimal.Decimal  `json:"progress"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"`
	Status        string           `json:"status"`
	StartDate     string           `json:"start_date"`
	TargetDate    string           `json:"target_date,omitempty"`
	MonthlyTarget *decimal.Decimal `json:"monthly_target,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ContributeInput struct {
	UserID string
	GoalID string
	Amount decimal.Decimal
	Date   time.Time
	Type   string
	Notes  string
}

type ContributionDTO struct {
	ContributionID string          `json:"contribution_id"`
	GoalID         string          `json:"goal_id"`
	GoalName       string          `json:"goal_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes,omitempty"`
	GoalStatus     string          `json:"goal_status,omitempty"`
	GoalCompleted  bool            `json:"goal_completed,omitempty"`
}

type UpdateStatusInput struct {
	UserID string
	GoalID string
	Status string
}

const dateLayout = "2006-01-02"

func toDTO(g *goal.Goal) GoalDTO {
	out := GoalDTO{
		GoalID:        g.GoalID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Remaining:     g.Remaining(),
		Progress:      g.Progress().Round(2),
		Category:      string(g.Category),
		Priority:      string(g.Priority),
		Status:        string(g.Status),
		StartDate:     g.StartDate.Format(dateLayout),
		MonthlyTarget: g.MonthlyTarget,
		Notes:         g.Notes,
		CreatedAt:     g.CreatedAt,
	}
	if g.TargetDate != nil {
		out.TargetDate = g.TargetDate.Format(dateLayout)
	}
	return out
}

func contributionDTO(c goal.ContributionView) ContributionDTO {
	return ContributionDTO{
		ContributionID: c.ContributionID,
		GoalID:         c.PublicGoalID,
		GoalName:       c.GoalName,
		Amount:         c.Amount,
		Date:           c.Date.Format(dateLayout),
		Type:           string(c.Type),
		Notes:          c.Notes,
	}
}
