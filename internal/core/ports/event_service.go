package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// CreateEventInput carries the new-event form fields. Date is the raw string
// as submitted; the service parses it into the event's Happens time.
type CreateEventInput struct {
	Name        string
	Description string
	Date        string
	Duration    string
}

type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	// Upcoming returns events that have not happened yet, soonest first.
	Upcoming(ctx context.Context) ([]*domain.Event, error)
	// Join records that the user is attending the event and returns the
	// updated user. Joining twice is a no-op.
	Join(ctx context.Context, userID, eventID string) (*domain.User, error)
}
