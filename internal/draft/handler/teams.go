package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/middleware"
)

// AddTeam handles POST /drafts/:id/teams.
func (h *Handler) AddTeam(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.AddTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /drafts/:id/teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": teams,
	})
}

// UpdateTeam handles PATCH /drafts/:id/teams/:team_id.
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req model.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("team_id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemoveTeam handles DELETE /drafts/:id/teams/:team_id.
func (h *Handler) RemoveTeam(c *gin.Context) {
	err := h.service.RemoveTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("team_id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"status": "removed",
	})
}

// ReorderTeams handles POST /drafts/:id/teams/reorder.
func (h *Handler) ReorderTeams(c *gin.Context) {
	var req model.ReorderTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	teams, err := h.service.ReorderTeams(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": teams,
	})
}

// AddPreSlot handles POST /drafts/:id/pre-slots.
func (h *Handler) AddPreSlot(c *gin.Context) {
	var req model.PreSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.AddPreSlot(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemovePreSlot handles DELETE /drafts/:id/pre-slots/:team_id/:player_id.
func (h *Handler) RemovePreSlot(c *gin.Context) {
	team, err := h.service.RemovePreSlot(
		c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("team_id"), c.Param("player_id"),
	)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}
