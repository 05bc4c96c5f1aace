package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/middleware"
)

// MakePick handles POST /drafts/:id/picks.
func (h *Handler) MakePick(c *gin.Context) {
	var req model.MakePickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	pick, err := h.service.MakePick(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pick)
}

// ListPicks handles GET /drafts/:id/picks.
func (h *Handler) ListPicks(c *gin.Context) {
	picks, err := h.service.ListPicks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"picks": picks,
	})
}

// AutoPick handles POST /drafts/:id/picks/auto. Clients poll the draft and
// call this once the visible deadline passes; the service re-checks expiry.
func (h *Handler) AutoPick(c *gin.Context) {
	pick, err := h.service.AutoPick(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pick)
}

// UndoPick handles POST /drafts/:id/picks/undo.
func (h *Handler) UndoPick(c *gin.Context) {
	resp, err := h.service.UndoLastPick(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AvailablePlayers handles GET /drafts/:id/players.
func (h *Handler) AvailablePlayers(c *gin.Context) {
	players, err := h.service.AvailablePlayers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"players": players,
	})
}

// DraftedPlayers handles GET /drafts/:id/players/drafted.
func (h *Handler) DraftedPlayers(c *gin.Context) {
	drafted, err := h.service.DraftedPlayers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"players": drafted,
	})
}

// GetRankings handles GET /drafts/:id/rankings.
func (h *Handler) GetRankings(c *gin.Context) {
	ranking, err := h.service.GetRankings(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// SaveRankings handles PUT /drafts/:id/rankings.
func (h *Handler) SaveRankings(c *gin.Context) {
	var req model.SaveRankingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	ranking, err := h.service.SaveRankings(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
