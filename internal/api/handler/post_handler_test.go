package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

func TestCreatePostRedirectsHome(t *testing.T) {
	store := newMemSessionStore()
	token, _ := store.Create(t.Context(), ports.SessionData{UserID: "u1"})
	users := &stubUsers{byID: map[string]*domain.User{"u1": {ID: "u1", Username: "alice"}}}
	posts := &stubPostService{}
	h := NewPostHandler(posts)

	form := url.Values{"title": {"Launch night"}, "info": {"We ship on friday."}}
	req := withSessionCookie(formRequest("/newpost", form), token)
	rec := serve(store, users, h.Create, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("got %d -> %q, want 302 -> /", rec.Code, rec.Header().Get("Location"))
	}
	if len(posts.created) != 1 {
		t.Fatalf("created = %d posts, want 1", len(posts.created))
	}
	got := posts.created[0]
	if got.Title != "Launch night" || got.Body != "We ship on friday." || got.AuthorID != "u1" {
		t.Fatalf("created = %+v", got)
	}
}

func TestCreatePostRejectsEmptyFields(t *testing.T) {
	store := newMemSessionStore()
	token, _ := store.Create(t.Context(), ports.SessionData{UserID: "u1"})
	users := &stubUsers{byID: map[string]*domain.User{"u1": {ID: "u1"}}}
	posts := &stubPostService{}
	h := NewPostHandler(posts)

	req := withSessionCookie(formRequest("/newpost", url.Values{"title": {"no body"}}), token)
	rec := serve(store, users, h.Create, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if len(posts.created) != 0 {
		t.Fatal("invalid form must not create a post")
	}
}

func TestCreatePostWithoutIdentityIsUnauthorized(t *testing.T) {
	store := newMemSessionStore()
	h := NewPostHandler(&stubPostService{})

	form := url.Values{"title": {"x"}, "info": {"y"}}
	rec := serve(store, &stubUsers{}, h.Create, formRequest("/newpost", form))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
