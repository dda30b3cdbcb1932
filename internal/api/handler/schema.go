package handler

import (
	"time"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type signupRequest struct {
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"firstname" validate:"required"`
	LastName  string `form:"lastname" validate:"required"`
}

type newPostRequest struct {
	Title string `form:"title" validate:"required"`
	Info  string `form:"info" validate:"required"`
}

type newEventRequest struct {
	Name     string `form:"name" validate:"required"`
	Desc     string `form:"desc" validate:"required"`
	Date     string `form:"date" validate:"required"`
	Duration string `form:"dur"`
}

type userResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstname"`
	LastName  string   `json:"lastname"`
	Admin     bool     `json:"admin"`
	Events    []string `json:"events,omitempty"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Happens     time.Time `json:"happens"`
	Duration    string    `json:"duration,omitempty"`
}

type homeResponse struct {
	User    *userResponse   `json:"user"`
	News    []postResponse  `json:"news"`
	Events  []eventResponse `json:"events"`
	Message []string        `json:"message,omitempty"`
	Error   []string        `json:"error,omitempty"`
	Notice  []string        `json:"notice,omitempty"`
	Success []string        `json:"success,omitempty"`
}

type signupPageResponse struct {
	Message []string `json:"message,omitempty"`
}

type membersResponse struct {
	User      *userResponse   `json:"user"`
	Members   []userResponse  `json:"members"`
	Events    []eventResponse `json:"events"`
	Personals []eventResponse `json:"personals"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

type eventPageResponse struct {
	Event eventResponse `json:"event"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
		Events:    u.EventIDs,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			AuthorID:  p.AuthorID,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Happens:     e.Happens,
		Duration:    e.Duration,
	}
}

func toEventResponses(events []*domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toRosterResponse(viewer *domain.User, r *ports.Roster) membersResponse {
	return membersResponse{
		User:      toUserResponse(viewer),
		Members:   toUserResponses(r.Members),
		Events:    toEventResponses(r.Events),
		Personals: toEventResponses(r.Personals),
	}
}
