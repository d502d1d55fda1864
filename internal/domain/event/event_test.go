package event

import (
	"context"
	"errors"
	"testing"
)

type recorder struct {
	got []Event
	err error
}

func (r *recorder) Publish(_ context.Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func TestEmit(t *testing.T) {
	ctx := context.Background()
	e := New(GoalCompleted, "u1", "g1")
	if e.OccurredAt.IsZero() || e.Type != GoalCompleted {
		t.Fatalf("New: %+v", e)
	}

	// nil publisher must not panic
	Emit(ctx, nil, e)

	r := &recorder{err: errors.New("broker down")}
	Emit(ctx, r, e)
	if len(r.got) != 1 || r.got[0].EntityID != "g1" {
		t.Fatalf("published = %+v", r.got)
	}
}
