package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// MemberService handles the member roster and profiles.
type MemberService struct {
	users  ports.UserRepository
	events ports.EventRepository
	log    zerolog.Logger
}

func NewMemberService(users ports.UserRepository, events ports.EventRepository, log zerolog.Logger) *MemberService {
	return &MemberService{users: users, events: events, log: log}
}

// Roster assembles the members page: every member ordered by last name, the
// full event list, and the events the viewer has joined.
func (s *MemberService) Roster(ctx context.Context, viewerID string) (*ports.Roster, error) {
	members, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	viewer, err := s.users.FindByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	personals, err := s.events.FindByIDs(ctx, viewer.EventIDs)
	if err != nil {
		return nil, err
	}

	return &ports.Roster{Members: members, Events: events, Personals: personals}, nil
}

func (s *MemberService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
