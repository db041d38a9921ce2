package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devboost/internal/auth"
	"devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/service"
)

const msgTeamFailed = "Failed to load team"

// TeamHandler serves the team roster and role management.
type TeamHandler struct {
	team service.TeamService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(team service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// TeamResponse lists the team members.
type TeamResponse struct {
	Members []model.TeamMember `json:"members"`
}

// ChangeRoleRequest carries the new role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse holds one updated member.
type MemberResponse struct {
	Member model.TeamMember `json:"member"`
}

// List godoc
// @Summary List team members
// @Tags team
// @Produce json
// @Security CookieAuth
// @Success 200 {object} TeamResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	members, err := h.team.Members(c.Request().Context())
	if err != nil {
		return errorResponse(err, msgTeamFailed)
	}
	return c.JSON(http.StatusOK, TeamResponse{Members: members})
}

// ChangeRole godoc
// @Summary Change a team member's role (admin only)
// @Description The member's existing session keeps its previous role until it expires.
// @Tags team
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Member ID"
// @Param request body ChangeRoleRequest true "New role"
// @Success 200 {object} MemberResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/{id}/role [patch]
func (h *TeamHandler) ChangeRole(c echo.Context) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return errorResponse(errors.ErrUnauthenticated, "")
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Role is required")
	}

	member, err := h.team.ChangeRole(c.Request().Context(), actor, c.Param("id"), model.Role(req.Role))
	if err != nil {
		return errorResponse(err, "Failed to update role")
	}
	return c.JSON(http.StatusOK, MemberResponse{Member: member})
}
