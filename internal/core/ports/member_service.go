package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// Roster is the members-page view: every member ordered by last name, every
// event, and the events the viewing member has joined.
type Roster struct {
	Members   []*domain.User
	Events    []*domain.Event
	Personals []*domain.Event
}

type MemberService interface {
	Roster(ctx context.Context, viewerID string) (*Roster, error)
	// Profile returns a single member by id.
	Profile(ctx context.Context, id string) (*domain.User, error)
}
