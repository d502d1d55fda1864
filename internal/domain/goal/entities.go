package goal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput = errors.New("invalid goal input")
	ErrNotFound     = errors.New("goal not found")
	// ErrClosed is returned when contributing to a completed or cancelled goal.
	ErrClosed            = errors.New("goal is closed")
	ErrInvalidTransition = errors.New("invalid goal status transition")
)

type Category string

const (
	CategoryEmergencyFund Category = "emergency_fund"
	CategoryVacation      Category = "vacation"
	CategoryHome          Category = "home"
	CategoryCar           Category = "car"
	CategoryEducation     Category = "education"
	CategoryWedding       Category = "wedding"
	CategoryBusiness      Category = "business"
	CategoryInvestment    Category = "investment"
	CategoryOther         Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEmergencyFund, CategoryVacation, CategoryHome, CategoryCar, CategoryEducation,
		CategoryWedding, CategoryBusiness, CategoryInvestment, CategoryOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusPaused || s == StatusCancelled
}

type ContributionType string

const (
	ContributionManual    ContributionType = "manual"
	ContributionAutomatic ContributionType = "automatic"
	ContributionBonus     ContributionType = "bonus"
	ContributionRefund    ContributionType = "refund"
	ContributionOther     ContributionType = "other"
)

func (t ContributionType) Valid() bool {
	switch t {
	case ContributionManual, ContributionAutomatic, ContributionBonus, ContributionRefund, ContributionOther:
		return true
	}
	return false
}

var hundred = decimal.NewFromInt(100)

// Table: goals
type Goal struct {
	ID            uint64           `gorm:"primaryKey;column:id" json:"-"`
	GoalID        string           `gorm:"size:32;uniqueIndex:ux_goals_goal_id" json:"goal_id"`
	UserID        string           `gorm:"size:32;index:idx_goals_user" json:"user_id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Description   string           `gorm:"type:text" json:"description,omitempty"`
	TargetAmount  decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"current_amount"`
	Category      Category         `gorm:"size:32;default:'other'" json:"category"`
	Priority      Priority         `gorm:"size:16;default:'medium'" json:"priority"`
	TargetDate    *time.Time       `gorm:"type:date" json:"target_date,omitempty"`
	StartDate     time.Time        `gorm:"type:date;not null" json:"start_date"`
	Status        Status           `gorm:"size:16;default:'active'" json:"status"`
	MonthlyTarget *decimal.Decimal `gorm:"type:decimal(15,2)" json:"monthly_target,omitempty"`
	Notes         string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Goal) TableName() string { return "goals" }

func (g Goal) Validate() error {
	label := g.Name
	if label == "" {
		label = g.GoalID
	}
	switch {
	case g.TargetAmount.IsNegative():
		return fmt.Errorf("%w: goal %q: target amount is negative", ErrInvalidInput, label)
	case g.CurrentAmount.IsNegative():
		return fmt.Errorf("%w: goal %q: current amount is negative", ErrInvalidInput, label)
	case g.MonthlyTarget != nil && g.MonthlyTarget.IsNegative():
		return fmt.Errorf("%w: goal %q: monthly target is negative", ErrInvalidInput, label)
	}
	return nil
}

// Progress is the display percentage, capped at 100. CurrentAmount is left as is.
// A goal with a zero target reports 0.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return capped(g.CurrentAmount.Div(g.TargetAmount).Mul(hundred))
}

// Remaining is what is left to save; never negative.
func (g Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Closed goals accept no more contributions.
func (g Goal) Closed() bool { return g.Status == StatusCompleted || g.Status == StatusCancelled }

// AddContribution increments the saved amount and completes the goal once the
// target is reached. Reports whether the completion happened on this call.
func (g *Goal) AddContribution(amount decimal.Decimal) (completed bool) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.Status != StatusCompleted && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = StatusCompleted
		return true
	}
	return false
}

// SetStatus applies a manual status change. Completion is automatic only, and
// a completed goal cannot be reopened.
func (g *Goal) SetStatus(next Status) error {
	if !next.Valid() || next == StatusCompleted {
		return fmt.Errorf("%w: cannot set status %q", ErrInvalidTransition, next)
	}
	if g.Status == StatusCompleted {
		return fmt.Errorf("%w: goal %q is completed", ErrInvalidTransition, g.Name)
	}
	g.Status = next
	return nil
}

// Table: goal_contributions
type Contribution struct {
	ID             uint64           `gorm:"primaryKey;column:id" json:"-"`
	ContributionID string           `gorm:"size:32;uniqueIndex:ux_goal_contributions_contribution_id" json:"contribution_id"`
	GoalID         uint64           `gorm:"not null;index" json:"-"`
	UserID         string           `gorm:"size:32;index" json:"user_id"`
	Amount         decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date           time.Time        `gorm:"type:date;not null" json:"date"`
	Type           ContributionType `gorm:"size:16;default:'manual'" json:"type"`
	Notes          string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Contribution) TableName() string { return "goal_contributions" }

// ContributionView is a contribution joined with its goal.
type ContributionView struct {
	Contribution
	PublicGoalID string `gorm:"column:public_goal_id" json:"goal_id"`
	GoalName     string `gorm:"column:goal_name" json:"goal_name"`
}

func capped(p decimal.Decimal) decimal.Decimal {
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
