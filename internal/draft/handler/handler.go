// Package handler provides HTTP handlers for draft endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/service"
	"github.com/rsheln/combine-draft/internal/middleware"
)

// Handler handles HTTP requests for draft endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new draft handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateDraft handles POST /drafts.
func (h *Handler) CreateDraft(c *gin.Context) {
	var req model.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// ListDrafts handles GET /drafts with optional event_id and league_id filters.
func (h *Handler) ListDrafts(c *gin.Context) {
	drafts, err := h.service.List(c.Request.Context(), c.Query("event_id"), c.Query("league_id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"drafts": drafts,
	})
}

// GetDraft handles GET /drafts/:id.
func (h *Handler) GetDraft(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateDraft handles PATCH /drafts/:id.
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req model.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.service.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft handles DELETE /drafts/:id.
func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"status": "deleted",
	})
}

// StartDraft handles POST /drafts/:id/start.
func (h *Handler) StartDraft(c *gin.Context) {
	draft, err := h.service.Start(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// PauseDraft handles POST /drafts/:id/pause.
func (h *Handler) PauseDraft(c *gin.Context) {
	draft, err := h.service.Pause(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ResumeDraft handles POST /drafts/:id/resume.
func (h *Handler) ResumeDraft(c *gin.Context) {
	draft, err := h.service.Resume(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}
