package crewauth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ActivityEventType labels an auth event.
type ActivityEventType string

const (
	ActivityEventLoginSuccess   ActivityEventType = "auth.login.success"
	ActivityEventLoginFailure   ActivityEventType = "auth.login.failure"
	ActivityEventAdminBootstrap ActivityEventType = "auth.admin.bootstrap"
	ActivityEventGuardRejection ActivityEventType = "auth.guard.rejected"
)

// ActivityEvent describes a single auth event for the audit trail.
type ActivityEvent struct {
	EventType  ActivityEventType
	Email      string
	Metadata   map[string]any
	OccurredAt time.Time
}

// ActivitySink receives auth events. Record must not block the login
// path on failure; callers log and continue.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

type noopActivitySink struct{}

func (noopActivitySink) Record(context.Context, ActivityEvent) error { return nil }

func normalizeActivitySink(sink ActivitySink) ActivitySink {
	if sink == nil {
		return noopActivitySink{}
	}
	return sink
}

// ActivityRecord is the persisted form of an ActivityEvent.
type ActivityRecord struct {
	bun.BaseModel `bun:"table:auth_activity,alias:act"`
	ID            uuid.UUID      `bun:"id,pk,type:uuid" json:"id"`
	EventType     string         `bun:"event_type,notnull" json:"event_type"`
	Email         string         `bun:"email" json:"email,omitempty"`
	Metadata      map[string]any `bun:"metadata" json:"metadata,omitempty"`
	OccurredAt    time.Time      `bun:"occurred_at,notnull" json:"occurred_at"`
}

// BunActivitySink appends events to the auth_activity table.
type BunActivitySink struct {
	db *bun.DB
}

var _ ActivitySink = (*BunActivitySink)(nil)

func NewBunActivitySink(db *bun.DB) *BunActivitySink {
	return &BunActivitySink{db: db}
}

func (s *BunActivitySink) Record(ctx context.Context, event ActivityEvent) error {
	record := &ActivityRecord{
		ID:         uuid.New(),
		EventType:  string(event.EventType),
		Email:      event.Email,
		Metadata:   event.Metadata,
		OccurredAt: event.OccurredAt,
	}

	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now()
	}

	_, err := s.db.NewInsert().Model(record).Exec(ctx)
	return err
}
