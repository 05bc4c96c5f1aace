package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	draftModel "github.com/rsheln/combine-draft/internal/draft/model"
	playerModel "github.com/rsheln/combine-draft/internal/player/model"
)

// ErrorResponse represents the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse writes the error envelope with the given status.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// notFoundResponse creates 404 error response.
func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}

// serviceError maps service sentinels onto the HTTP error envelope.
// Unrecognized errors become an opaque 500.
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, draftModel.ErrDraftNotFound):
		notFoundResponse(c, "draft not found")
	case errors.Is(err, draftModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, playerModel.ErrPlayerNotFound):
		notFoundResponse(c, "player not found")
	case errors.Is(err, draftModel.ErrNotOrganizer):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, draftModel.ErrNotYourTurn):
		errorResponse(c, "NOT_YOUR_TURN", err.Error(), http.StatusForbidden)
	case errors.Is(err, draftModel.ErrPlayerDrafted):
		errorResponse(c, "PLAYER_DRAFTED", err.Error(), http.StatusConflict)
	case errors.Is(err, draftModel.ErrInvalidState):
		errorResponse(c, "INVALID_STATE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrInsufficientTeams):
		errorResponse(c, "INSUFFICIENT_TEAMS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrTimerNotExpired):
		errorResponse(c, "TIMER_NOT_EXPIRED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrAutoPickDisabled):
		errorResponse(c, "AUTO_PICK_DISABLED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrNoPicksToUndo):
		errorResponse(c, "NO_PICKS_TO_UNDO", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrNoPlayersAvailable):
		errorResponse(c, "NO_PLAYERS_AVAILABLE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, draftModel.ErrInvalidDraftType),
		errors.Is(err, draftModel.ErrInvalidName),
		errors.Is(err, draftModel.ErrInvalidTeamName),
		errors.Is(err, draftModel.ErrInvalidTeamOrder),
		errors.Is(err, draftModel.ErrInvalidSettings):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("internal error", "path", c.FullPath(), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
