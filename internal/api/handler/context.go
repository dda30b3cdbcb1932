package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernova-club/community-api/internal/api/middleware"
	"github.com/supernova-club/community-api/internal/core/domain"
)

// requireCurrentUser returns the authenticated user or an HTTP 401. The route
// guards already redirect anonymous visitors, so hitting the error branch
// means the handler was mounted without its guard.
func requireCurrentUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
