package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
// Username uniqueness is enforced by the store at write time: a Create that
// loses a race against a concurrent signup for the same username must return
// domain.ErrUserExists, not insert a second record.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AddEvent adds eventID to the user's joined set and returns the updated
	// record. Adding an already-joined event is a no-op.
	AddEvent(ctx context.Context, userID, eventID string) (*domain.User, error)
	// List returns all users ordered by lowercase last name ascending.
	List(ctx context.Context) ([]*domain.User, error)
}
