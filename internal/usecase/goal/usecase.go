package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/domain/event"
	"finance-dashboard/internal/domain/goal"
	"finance-dashboard/internal/domain/uow"
	"finance-dashboard/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   goal.Repository
	uow    uow.UnitOfWork
	events event.Publisher
}

func NewUsecase(repo goal.Repository, tx uow.UnitOfWork, events event.Publisher) *Usecase {
	return &Usecase{repo: repo, uow: tx, events: events}
}

func (u *Usecase) Create(ctx context.Context, in CreateGoalInput) (*GoalDTO, error) {
	g := &goal.Goal{
		GoalID:        id.NewID32(),
		UserID:        in.UserID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Category:      goal.Category(orDefault(in.Category, string(goal.CategoryOther))),
		Priority:      goal.Priority(orDefault(in.Priority, string(goal.PriorityMedium))),
		TargetDate:    in.TargetDate,
		StartDate:     in.StartDate.UTC(),
		Status:        goal.StatusActive,
		MonthlyTarget: in.MonthlyTarget,
		Notes:         in.Notes,
	}
	if g.StartDate.IsZero() {
		g.StartDate = today()
	}

	switch {
	case g.Name == "":
		return nil, fmt.Errorf("%w: name is required", goal.ErrInvalidInput)
	case !g.TargetAmount.IsPositive():
		return nil, fmt.Errorf("%w: target amount must be positive", goal.ErrInvalidInput)
	case !g.Category.Valid():
		return nil, fmt.Errorf("%w: unknown category %q", goal.ErrInvalidInput, g.Category)
	case !g.Priority.Valid():
		return nil, fmt.Errorf("%w: unknown priority %q", goal.ErrInvalidInput, g.Priority)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	// a goal can start already funded
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = goal.StatusCompleted
	}

	if err := u.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	dto := toDTO(g)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, userID string) ([]GoalDTO, error) {
	goals, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]GoalDTO, 0, len(goals))
	for i := range goals {
		out = append(out, toDTO(&goals[i]))
	}
	return out, nil
}

func (u *Usecase) AddContribution(ctx context.Context, in ContributeInput) (*ContributionDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution amount must be positive", goal.ErrInvalidInput)
	}
	ctype := goal.ContributionType(orDefault(in.Type, string(goal.ContributionManual)))
	if !ctype.Valid() {
		return nil, fmt.Errorf("%w: unknown contribution type %q", goal.ErrInvalidInput, ctype)
	}
	date := in.Date.UTC()
	if date.IsZero() {
		date = today()
	}

	var (
		dto       *ContributionDTO
		completed bool
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Goals.GetByGoalIDForUpdate(ctx, in.UserID, in.GoalID)
		if err != nil {
			return notFound(err)
		}
		if g.Closed() {
			return fmt.Errorf("%w: %s", goal.ErrClosed, g.Status)
		}

		c := &goal.Contribution{
			ContributionID: id.NewID32(),
			GoalID:         g.ID,
			UserID:         in.UserID,
			Amount:         in.Amount,
			Date:           date,
			Type:           ctype,
			Notes:          in.Notes,
		}
		if err := r.Goals.CreateContribution(ctx, c); err != nil {
			return err
		}

		completed = g.AddContribution(c.Amount)
		if err := r.Goals.Save(ctx, g); err != nil {
			return err
		}

		dto = &ContributionDTO{
			ContributionID: c.ContributionID,
			GoalID:         g.GoalID,
			GoalName:       g.Name,
			Amount:         c.Amount,
			Date:           c.Date.Format(dateLayout),
			Type:           string(c.Type),
			Notes:          c.Notes,
			GoalStatus:     string(g.Status),
			GoalCompleted:  completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed {
		event.Emit(ctx, u.events, event.New(event.GoalCompleted, in.UserID, dto.GoalID))
	}
	return dto, nil
}

func (u *Usecase) ListContributions(ctx context.Context, userID, goalID string) ([]ContributionDTO, error) {
	var numericID uint64
	if goalID != "" {
		g, err := u.repo.GetByGoalID(ctx, userID, goalID)
		if err != nil {
			return nil, notFound(err)
		}
		numericID = g.ID
	}
	views, err := u.repo.ListContributions(ctx, userID, numericID)
	if err != nil {
		return nil, err
	}
	out := make([]ContributionDTO, 0, len(views))
	for _, v := range views {
		out = append(out, contributionDTO(v))
	}
	return out, nil
}

// UpdateStatus sets active, paused or cancelled. Completion only happens
// through contributions.
func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*GoalDTO, error) {
	var dto *GoalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Goals.GetByGoalIDForUpdate(ctx, in.UserID, in.GoalID)
		if err != nil {
			return notFound(err)
		}
		if err := g.SetStatus(goal.Status(in.Status)); err != nil {
			return err
		}
		if err := r.Goals.Save(ctx, g); err != nil {
			return err
		}
		out := toDTO(g)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Insights computes portfolio statistics as of today.
func (u *Usecase) Insights(ctx context.Context, userID string, today time.Time) (goal.Insights, error) {
	goals, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return goal.Insights{}, err
	}
	return goal.ComputeInsights(goals, today)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return goal.ErrNotFound
	}
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
