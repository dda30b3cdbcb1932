package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
)

func TestMemberService_Roster(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := NewMemberService(users, events, zerolog.Nop())

	zoe, _ := users.Create(context.Background(), &domain.User{Username: "zoe", LastName: "Young", LowerLast: "young"})
	_, _ = users.Create(context.Background(), &domain.User{Username: "adam", LastName: "Able", LowerLast: "able"})

	hike := &domain.Event{Name: "Hike", Happens: time.Now().AddDate(0, 0, 3)}
	picnic := &domain.Event{Name: "Picnic", Happens: time.Now().AddDate(0, 0, 5)}
	_ = events.Create(context.Background(), hike)
	_ = events.Create(context.Background(), picnic)
	_, _ = users.AddEvent(context.Background(), zoe.ID, hike.ID)

	roster, err := svc.Roster(context.Background(), zoe.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roster.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(roster.Members))
	}
	if roster.Members[0].Username != "adam" {
		t.Fatalf("roster must be ordered by lowercase last name; first is %q", roster.Members[0].Username)
	}
	if len(roster.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(roster.Events))
	}
	if len(roster.Personals) != 1 || roster.Personals[0].Name != "Hike" {
		t.Fatalf("expected personals [Hike], got %+v", roster.Personals)
	}
}

func TestMemberService_Roster_UnknownViewer(t *testing.T) {
	svc := NewMemberService(newStubUserRepo(), newStubEventRepo(), zerolog.Nop())

	if _, err := svc.Roster(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMemberService_Profile(t *testing.T) {
	users := newStubUserRepo()
	svc := NewMemberService(users, newStubEventRepo(), zerolog.Nop())

	created, _ := users.Create(context.Background(), &domain.User{Username: "alice"})

	got, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("expected alice, got %q", got.Username)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
