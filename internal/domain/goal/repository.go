package goal

import "context"

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	GetByGoalID(ctx context.Context, userID, goalID string) (*Goal, error)
	GetByGoalIDForUpdate(ctx context.Context, userID, goalID string) (*Goal, error)
	// Highest priority first, then nearest target date.
	ListByUser(ctx context.Context, userID string) ([]Goal, error)
	Save(ctx context.Context, g *Goal) error

	CreateContribution(ctx context.Context, c *Contribution) error
	// goalID 0 means every goal of the user.
	ListContributions(ctx context.Context, userID string, goalID uint64) ([]ContributionView, error)
}
