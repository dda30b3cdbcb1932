package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// dateLayouts are the formats accepted for event date submissions. The form
// posts plain dates; RFC3339 is accepted for API callers.
var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// EventService handles event listing and member attendance.
type EventService struct {
	events ports.EventRepository
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, users ports.UserRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, users: users, log: log}
}

func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	if in.Name == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}

	happens, err := parseEventDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	event := &domain.Event{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Happens:     happens,
		Duration:    in.Duration,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().Str("name", event.Name).Time("happens", event.Happens).Msg("event created")
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Upcoming(ctx context.Context) ([]*domain.Event, error) {
	return s.events.ListUpcoming(ctx, time.Now().UTC())
}

// Join adds the event to the user's joined set. The event must exist; the
// store keeps the set duplicate-free, so joining twice is harmless.
func (s *EventService) Join(ctx context.Context, userID, eventID string) (*domain.User, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	user, err := s.users.AddEvent(ctx, userID, eventID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("event_id", eventID).Msg("failed to join event")
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("event_id", eventID).Msg("event joined")
	return user, nil
}

func parseEventDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
