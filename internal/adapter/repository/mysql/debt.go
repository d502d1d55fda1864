package mysql

import (
	"context"

	debtDomain "finance-dashboard/internal/domain/debt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const priorityRank = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"

type DebtRepository struct{ db *gorm.DB }

func NewDebtRepository(db *gorm.DB) *DebtRepository { return &DebtRepository{db: db} }

func (r *DebtRepository) Create(ctx context.Context, d *debtDomain.Debt) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DebtRepository) Save(ctx context.Context, d *debtDomain.Debt) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DebtRepository) GetByDebtID(ctx context.Context, userID, debtID string) (*debtDomain.Debt, error) {
	var out debtDomain.Debt
	res := r.db.WithContext(ctx).Where("user_id = ? AND debt_id = ?", userID, debtID).First(&out)
	return &out, res.Error
}

// SELECT ... FOR UPDATE on MySQL; sqlite has no row locks and ignores the clause.
func (r *DebtRepository) GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*debtDomain.Debt, error) {
	var out debtDomain.Debt
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND debt_id = ?", userID, debtID).
		First(&out)
	return &out, res.Error
}

func (r *DebtRepository) ListActiveByUser(ctx context.Context, userID string) ([]debtDomain.Debt, error) {
	var out []debtDomain.Debt
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND current_balance > 0", userID).
		Order(priorityRank + ", interest_rate DESC, id").
		Find(&out)
	return out, res.Error
}

func (r *DebtRepository) CreatePayment(ctx context.Context, p *debtDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DebtRepository) ListPayments(ctx context.Context, userID string, debtID uint64) ([]debtDomain.PaymentView, error) {
	var out []debtDomain.PaymentView
	q := r.db.WithContext(ctx).
		Table("debt_payments AS p").
		Select("p.*, d.debt_id AS public_debt_id, d.name AS debt_name, d.lender AS lender").
		Joins("JOIN debts d ON d.id = p.debt_id").
		Where("p.user_id = ? AND d.deleted_at IS NULL", userID)
	if debtID != 0 {
		q = q.Where("p.debt_id = ?", debtID)
	}
	res := q.Order("p.date DESC, p.id DESC").Scan(&out)
	return out, res.Error
}
