package event

import (
	"context"
	"log/slog"
	"time"
)

type Type string

const (
	DebtRetired   Type = "debt.retired"
	GoalCompleted Type = "goal.completed"
)

type Event struct {
	Type       Type      `json:"type"`
	UserID     string    `json:"user_id"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(t Type, userID, entityID string) Event {
	return Event{Type: t, UserID: userID, EntityID: entityID, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Emit publishes after a committed write. Failures are logged and dropped; a nil
// publisher only logs.
func Emit(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		slog.DebugContext(ctx, "no event publisher configured, skipping", "type", e.Type, "entity_id", e.EntityID)
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		slog.WarnContext(ctx, "publish event failed", "type", e.Type, "entity_id", e.EntityID, "error", err)
	}
}
