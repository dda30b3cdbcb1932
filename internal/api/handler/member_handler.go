package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernova-club/community-api/internal/core/ports"
)

// MemberHandler serves the member roster and individual profiles.
type MemberHandler struct {
	members ports.MemberService
}

func NewMemberHandler(members ports.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Members handles GET /members: the roster plus the viewer's own events.
func (h *MemberHandler) Members(c echo.Context) error {
	viewer, err := requireCurrentUser(c)
	if err != nil {
		return err
	}

	roster, err := h.members.Roster(c.Request().Context(), viewer.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRosterResponse(viewer, roster))
}

// Profile handles GET /member/:id.
func (h *MemberHandler) Profile(c echo.Context) error {
	member, err := h.members.Profile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: *toUserResponse(member)})
}
