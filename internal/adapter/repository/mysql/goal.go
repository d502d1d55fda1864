package mysql

import (
	"context"

	goalDomain "finance-dashboard/internal/domain/goal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository struct{ db *gorm.DB }

func NewGoalRepository(db *gorm.DB) *GoalRepository { return &GoalRepository{db: db} }

func (r *GoalRepository) Create(ctx context.Context, g *goalDomain.Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GoalRepository) Save(ctx context.Context, g *goalDomain.Goal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GoalRepository) GetByGoalID(ctx context.Context, userID, goalID string) (*goalDomain.Goal, error) {
	var out goalDomain.Goal
	res := r.db.WithContext(ctx).Where("user_id = ? AND goal_id = ?", userID, goalID).First(&out)
	return &out, res.Error
}

func (r *GoalRepository) GetByGoalIDForUpdate(ctx context.Context, userID, goalID string) (*goalDomain.Goal, error) {
	var out goalDomain.Goal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		First(&out)
	return &out, res.Error
}

// Goals without a target date sort last.
func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]goalDomain.Goal, error) {
	var out []goalDomain.Goal
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(priorityRank + ", CASE WHEN target_date IS NULL THEN 1 ELSE 0 END, target_date, id").
		Find(&out)
	return out, res.Error
}

func (r *GoalRepository) CreateContribution(ctx context.Context, c *goalDomain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GoalRepository) ListContributions(ctx context.Context, userID string, goalID uint64) ([]goalDomain.ContributionView, error) {
	var out []goalDomain.ContributionView
	q := r.db.WithContext(ctx).
		Table("goal_contributions AS c").
		Select("c.*, g.goal_id AS public_goal_id, g.name AS goal_name").
		Joins("JOIN goals g ON g.id = c.goal_id").
		Where("c.user_id = ? AND g.deleted_at IS NULL", userID)
	if goalID != 0 {
		q = q.Where("c.goal_id = ?", goalID)
	}
	res := q.Order("c.date DESC, c.id DESC").Scan(&out)
	return out, res.Error
}
