package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/api/middleware"
	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// memSessionStore is an in-memory ports.SessionStore with predictable tokens.
type memSessionStore struct {
	sessions  map[string]ports.SessionData
	next      int
	createErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]ports.SessionData)}
}

func (s *memSessionStore) Create(_ context.Context, data ports.SessionData) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.next++
	token := "tok" + strconv.Itoa(s.next)
	s.sessions[token] = data
	return token, nil
}

func (s *memSessionStore) Get(_ context.Context, token string) (*ports.SessionData, error) {
	data, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := data
	return &cp, nil
}

func (s *memSessionStore) Save(_ context.Context, token string, data ports.SessionData) error {
	s.sessions[token] = data
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// stubUsers is the minimal ports.UserRepository the session middleware needs.
type stubUsers struct {
	byID map[string]*domain.User
}

func (r *stubUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUsers) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUsers) AddEvent(_ context.Context, userID, _ string) (*domain.User, error) {
	return r.FindByID(context.Background(), userID)
}

func (r *stubUsers) List(_ context.Context) ([]*domain.User, error) {
	return nil, nil
}

type stubAuthService struct {
	signInUser *domain.User
	signInErr  error
	signUpUser *domain.User
	signUpErr  error
	signUps    []ports.SignUpInput
}

func (s *stubAuthService) SignIn(_ context.Context, _, _ string) (*domain.User, error) {
	return s.signInUser, s.signInErr
}

func (s *stubAuthService) SignUp(_ context.Context, in ports.SignUpInput) (*domain.User, error) {
	s.signUps = append(s.signUps, in)
	return s.signUpUser, s.signUpErr
}

type stubPostService struct {
	feed    []*domain.Post
	created []ports.CreatePostInput
	err     error
}

func (s *stubPostService) Create(_ context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &domain.Post{ID: "p1", Title: in.Title, Body: in.Body, AuthorID: in.AuthorID}, nil
}

func (s *stubPostService) Feed(_ context.Context) ([]*domain.Post, error) {
	return s.feed, s.err
}

type stubEventService struct {
	events  map[string]*domain.Event
	created []ports.CreateEventInput
	joins   [][2]string
	err     error
}

func (s *stubEventService) Create(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &domain.Event{ID: "e1", Name: in.Name, Description: in.Description, Date: in.Date}, nil
}

func (s *stubEventService) Get(_ context.Context, id string) (*domain.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *stubEventService) Upcoming(_ context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, s.err
}

func (s *stubEventService) Join(_ context.Context, userID, eventID string) (*domain.User, error) {
	if _, ok := s.events[eventID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	s.joins = append(s.joins, [2]string{userID, eventID})
	return &domain.User{ID: userID, EventIDs: []string{eventID}}, nil
}

type stubMemberService struct {
	roster  *ports.Roster
	profile *domain.User
	err     error
}

func (s *stubMemberService) Roster(_ context.Context, _ string) (*ports.Roster, error) {
	return s.roster, s.err
}

func (s *stubMemberService) Profile(_ context.Context, id string) (*domain.User, error) {
	if s.profile == nil || s.profile.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.profile, nil
}

// serve runs one request through the session middleware and the handler the
// way the router wires them.
func serve(store ports.SessionStore, users ports.UserRepository, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	return serveParam(store, users, h, req, "")
}

// serveParam is serve with a :id route parameter attached to the context.
func serveParam(store ports.SessionStore, users ports.UserRepository, h echo.HandlerFunc, req *http.Request, paramID string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	wrapped := middleware.Session(store, users, zerolog.Nop())(h)
	if err := wrapped(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

// serveWithParam invokes a handler directly with a single :id route parameter,
// bypassing the session middleware. The raw handler error is returned so tests
// can assert on domain sentinels.
func serveWithParam(h echo.HandlerFunc, path, id string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, strings.Replace(path, ":id", id, 1), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, h(c)
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func withSessionCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	return req
}

// sessionCookie extracts the session token set on the response, if any.
func sessionCookie(rec *httptest.ResponseRecorder) (string, bool) {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie.Value, true
		}
	}
	return "", false
}
