package mysql

import (
	"context"

	txDomain "finance-dashboard/internal/domain/transaction"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	return r.distinct(ctx, userID, "category")
}

func (r *TransactionRepository) ListModes(ctx context.Context, userID string) ([]string, error) {
	return r.distinct(ctx, userID, "mode")
}

func (r *TransactionRepository) distinct(ctx context.Context, userID, column string) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Where("user_id = ?", userID).
		Distinct().
		Order(column).
		Pluck(column, &out)
	return out, res.Error
}
