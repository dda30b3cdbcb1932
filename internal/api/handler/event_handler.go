package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernova-club/community-api/internal/api/metrics"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// EventHandler serves event creation, lookup and attendance.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Create handles POST /newevent.
func (h *EventHandler) Create(c echo.Context) error {
	if _, err := requireCurrentUser(c); err != nil {
		return err
	}

	var req newEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.events.Create(c.Request().Context(), ports.CreateEventInput{
		Name:        req.Name,
		Description: req.Desc,
		Date:        req.Date,
		Duration:    req.Duration,
	}); err != nil {
		return err
	}

	metrics.EventsCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Get handles GET /event/:id.
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventPageResponse{Event: toEventResponse(event)})
}

// Join handles GET /addevent/:id, adding the event to the visitor's plans.
func (h *EventHandler) Join(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}

	if _, err := h.events.Join(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.EventJoinsTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}
