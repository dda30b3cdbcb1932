package ports

import (
	"context"
	"time"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// ListUpcoming returns events happening at or after from, soonest first.
	ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// FindByIDs returns the events matching ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
}
