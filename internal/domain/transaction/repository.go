package transaction

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	// Newest first.
	ListByUser(ctx context.Context, userID string) ([]Transaction, error)
	ListCategories(ctx context.Context, userID string) ([]string, error)
	ListModes(ctx context.Context, userID string) ([]string, error)
}
