package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernova-club/community-api/internal/api/metrics"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// PostHandler serves news post creation.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create handles POST /newpost and sends the author back to the front page.
func (h *PostHandler) Create(c echo.Context) error {
	author, err := requireCurrentUser(c)
	if err != nil {
		return err
	}

	var req newPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.posts.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Body:     req.Info,
		AuthorID: author.ID,
	}); err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}
