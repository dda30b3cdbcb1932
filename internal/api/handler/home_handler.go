package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernova-club/community-api/internal/api/middleware"
	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// HomeHandler serves the public landing pages.
type HomeHandler struct {
	posts  ports.PostService
	events ports.EventService
}

func NewHomeHandler(posts ports.PostService, events ports.EventService) *HomeHandler {
	return &HomeHandler{posts: posts, events: events}
}

// Home handles GET /. It composes the news feed with the upcoming events and
// whatever flash messages the session carried.
func (h *HomeHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.posts.Feed(ctx)
	if err != nil {
		return err
	}
	events, err := h.events.Upcoming(ctx)
	if err != nil {
		return err
	}

	flashes := middleware.Flashes(c)
	return c.JSON(http.StatusOK, homeResponse{
		User:    toUserResponse(middleware.CurrentUser(c)),
		News:    toPostResponses(posts),
		Events:  toEventResponses(events),
		Message: flashes[domain.FlashMessage],
		Error:   flashes[domain.FlashError],
		Notice:  flashes[domain.FlashNotice],
		Success: flashes[domain.FlashSuccess],
	})
}

// Signup handles GET /signup, surfacing any registration flash messages.
func (h *HomeHandler) Signup(c echo.Context) error {
	flashes := middleware.Flashes(c)
	return c.JSON(http.StatusOK, signupPageResponse{
		Message: flashes[domain.FlashMessage],
	})
}
