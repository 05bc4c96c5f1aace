// Package router provides draft module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/draft/handler"
	"github.com/rsheln/combine-draft/internal/draft/repository"
	"github.com/rsheln/combine-draft/internal/draft/service"
	"github.com/rsheln/combine-draft/internal/middleware"
	playerRepository "github.com/rsheln/combine-draft/internal/player/repository"
	"github.com/rsheln/combine-draft/internal/player/scoring"
)

// RegisterRoutes registers draft module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	players := playerRepository.New(db)
	svc := service.New(repo, players, scoring.NewCompositeProvider(), db, clockwork.NewRealClock(), logger)
	h := handler.New(svc, logger)

	drafts := r.Group("/drafts")
	drafts.Use(middleware.Identity())
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("", h.ListDrafts)
		drafts.GET("/:id", h.GetDraft)
		drafts.PATCH("/:id", h.UpdateDraft)
		drafts.DELETE("/:id", h.DeleteDraft)

		drafts.POST("/:id/start", h.StartDraft)
		drafts.POST("/:id/pause", h.PauseDraft)
		drafts.POST("/:id/resume", h.ResumeDraft)

		drafts.POST("/:id/teams", h.AddTeam)
		drafts.GET("/:id/teams", h.ListTeams)
		drafts.POST("/:id/teams/reorder", h.ReorderTeams)
		drafts.PATCH("/:id/teams/:team_id", h.UpdateTeam)
		drafts.DELETE("/:id/teams/:team_id", h.RemoveTeam)

		drafts.POST("/:id/picks", h.MakePick)
		drafts.GET("/:id/picks", h.ListPicks)
		drafts.POST("/:id/picks/auto", h.AutoPick)
		drafts.POST("/:id/picks/undo", h.UndoPick)

		drafts.GET("/:id/players", h.AvailablePlayers)
		drafts.GET("/:id/players/drafted", h.DraftedPlayers)

		drafts.GET("/:id/rankings", h.GetRankings)
		drafts.PUT("/:id/rankings", h.SaveRankings)

		drafts.POST("/:id/pre-slots", h.AddPreSlot)
		drafts.DELETE("/:id/pre-slots/:team_id/:player_id", h.RemovePreSlot)
	}
}
