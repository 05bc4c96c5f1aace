// Package service provides business logic layer for the draft module.
package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/repository"
	playerModel "github.com/rsheln/combine-draft/internal/player/model"
	playerRepository "github.com/rsheln/combine-draft/internal/player/repository"
	"github.com/rsheln/combine-draft/internal/player/scoring"
)

// Service defines the interface for draft business logic operations.
type Service interface {
	// Create creates a draft in setup state.
	Create(ctx context.Context, userID string, req *model.CreateDraftRequest) (*model.Draft, error)

	// Get returns a draft with its teams and pick ledger.
	Get(ctx context.Context, draftID string) (*model.DraftDetail, error)

	// List returns drafts, optionally filtered by event and league.
	List(ctx context.Context, eventID, leagueID string) ([]model.Draft, error)

	// Update changes draft settings. Organizer only, setup state only.
	Update(ctx context.Context, userID, draftID string, req *model.UpdateDraftRequest) (*model.Draft, error)

	// Delete removes a draft and everything under it. Organizer only, setup state only.
	Delete(ctx context.Context, userID, draftID string) error

	// Start activates a draft: freezes the team order, resolves the round
	// count and puts the first team on the clock.
	Start(ctx context.Context, userID, draftID string) (*model.Draft, error)

	// Pause suspends an active draft and clears the pick clock.
	Pause(ctx context.Context, userID, draftID string) (*model.Draft, error)

	// Resume reactivates a paused draft with a fresh pick clock.
	Resume(ctx context.Context, userID, draftID string) (*model.Draft, error)

	// AddTeam registers a team during setup.
	AddTeam(ctx context.Context, userID, draftID string, req *model.CreateTeamRequest) (*model.Team, error)

	// ListTeams returns the draft's teams in pick order.
	ListTeams(ctx context.Context, draftID string) ([]model.Team, error)

	// UpdateTeam changes team fields during setup.
	UpdateTeam(ctx context.Context, userID, draftID, teamID string, req *model.UpdateTeamRequest) (*model.Team, error)

	// RemoveTeam drops a team during setup and renumbers the remaining teams.
	RemoveTeam(ctx context.Context, userID, draftID, teamID string) error

	// ReorderTeams applies an explicit team ordering during setup.
	ReorderTeams(ctx context.Context, userID, draftID string, req *model.ReorderTeamsRequest) ([]model.Team, error)

	// AddPreSlot records a player as pre-assigned to a team during setup.
	AddPreSlot(ctx context.Context, userID, draftID string, req *model.PreSlotRequest) (*model.Team, error)

	// RemovePreSlot removes a pre-assigned player from a team during setup.
	RemovePreSlot(ctx context.Context, userID, draftID, teamID, playerID string) (*model.Team, error)

	// MakePick drafts a player for the team on the clock.
	MakePick(ctx context.Context, userID, draftID string, req *model.MakePickRequest) (*model.Pick, error)

	// AutoPick makes the system pick for the team on the clock once its
	// deadline has passed. Poll-driven: any client may trigger it.
	AutoPick(ctx context.Context, draftID string) (*model.Pick, error)

	// UndoLastPick removes the most recent pick and rewinds the clock to
	// its slot, reopening a completed draft if necessary.
	UndoLastPick(ctx context.Context, userID, draftID string) (*model.UndoPickResponse, error)

	// ListPicks returns the pick ledger in pick order.
	ListPicks(ctx context.Context, draftID string) ([]model.Pick, error)

	// AvailablePlayers returns eligible players not yet drafted.
	AvailablePlayers(ctx context.Context, draftID string) ([]playerModel.Player, error)

	// DraftedPlayers returns the ledger enriched with player records.
	DraftedPlayers(ctx context.Context, draftID string) ([]model.DraftedPlayer, error)

	// GetRankings returns the caller's saved player ranking, if any.
	GetRankings(ctx context.Context, userID, draftID string) (*model.CoachRanking, error)

	// SaveRankings creates or replaces the caller's player ranking.
	SaveRankings(ctx context.Context, userID, draftID string, req *model.SaveRankingsRequest) (*model.CoachRanking, error)
}

type service struct {
	repo    repository.Repository
	players playerRepository.Repository
	scores  scoring.Provider
	db      *gorm.DB
	clock   clockwork.Clock
	logger  *zap.SugaredLogger

	// locksMu guards locks; each draft gets its own mutex so turn-state
	// mutations on one draft serialize without blocking other drafts.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a new draft service instance.
func New(
	repo repository.Repository,
	players playerRepository.Repository,
	scores scoring.Provider,
	db *gorm.DB,
	clock clockwork.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		players: players,
		scores:  scores,
		db:      db,
		clock:   clock,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// draftLock returns the mutex serializing turn-state mutations for a draft.
func (s *service) draftLock(draftID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[draftID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[draftID] = mu
	}
	return mu
}

// newID builds a prefixed random identifier, e.g. "draft_3fa4c09b12de".
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// eligiblePlayers returns the draft's player pool (event plus optional age
// group). Callers inside a db.Transaction must pass a tx-scoped player
// repository, not s.players: a base-pool query under an open transaction
// waits on the connection the transaction already holds.
func eligiblePlayers(ctx context.Context, players playerRepository.Repository, draft *model.Draft) ([]playerModel.Player, error) {
	return players.ListEligible(ctx, draft.EventID, draft.AgeGroup)
}

// requireOrganizer rejects callers other than the draft creator.
func requireOrganizer(draft *model.Draft, userID string) error {
	if draft.CreatedBy != userID {
		return model.ErrNotOrganizer
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID string, req *model.CreateDraftRequest) (*model.Draft, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrInvalidName
	}

	draftType := model.DraftTypeSnake
	if req.DraftType != "" {
		draftType = model.DraftType(req.DraftType)
		if !model.ValidDraftType(draftType) {
			return nil, model.ErrInvalidDraftType
		}
	}
	if req.NumRounds != nil && *req.NumRounds < 1 {
		return nil, model.ErrInvalidSettings
	}
	if req.PickTimerSeconds != nil && *req.PickTimerSeconds < 0 {
		return nil, model.ErrInvalidSettings
	}
	if req.TradeWindow != nil && !model.ValidTradeWindow(*req.TradeWindow) {
		return nil, model.ErrInvalidSettings
	}
	if req.Visibility != nil && !model.ValidVisibility(*req.Visibility) {
		return nil, model.ErrInvalidSettings
	}

	now := s.clock.Now().UTC()
	draft := &model.Draft{
		ID:                    newID("draft_"),
		EventID:               req.EventID,
		LeagueID:              req.LeagueID,
		Name:                  strings.TrimSpace(req.Name),
		AgeGroup:              req.AgeGroup,
		Status:                model.DraftStatusSetup,
		DraftType:             draftType,
		NumRounds:             req.NumRounds,
		TradeWindow:           model.TradeWindowDuringDraft,
		TradesRequireApproval: true,
		Visibility:            model.VisibilityCoaches,
		CreatedAt:             now,
		UpdatedAt:             now,
		CreatedBy:             userID,
	}
	if req.PickTimerSeconds != nil {
		draft.PickTimerSeconds = *req.PickTimerSeconds
	}
	if req.AutoPickOnTimeout != nil {
		draft.AutoPickOnTimeout = *req.AutoPickOnTimeout
	}
	if req.TradesEnabled != nil {
		draft.TradesEnabled = *req.TradesEnabled
	}
	if req.TradeWindow != nil {
		draft.TradeWindow = *req.TradeWindow
	}
	if req.TradesRequireApproval != nil {
		draft.TradesRequireApproval = *req.TradesRequireApproval
	}
	if req.Visibility != nil {
		draft.Visibility = *req.Visibility
	}

	if err := s.repo.CreateDraft(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Infow("draft created",
		"draft_id", draft.ID,
		"event_id", draft.EventID,
		"draft_type", draft.DraftType,
		"created_by", userID,
	)
	return draft, nil
}

func (s *service) Get(ctx context.Context, draftID string) (*model.DraftDetail, error) {
	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.ListTeams(ctx, draftID)
	if err != nil {
		return nil, err
	}
	picks, err := s.repo.ListPicks(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return &model.DraftDetail{Draft: *draft, Teams: teams, Picks: picks}, nil
}

func (s *service) List(ctx context.Context, eventID, leagueID string) ([]model.Draft, error) {
	return s.repo.ListDrafts(ctx, eventID, leagueID)
}

func (s *service) Update(ctx context.Context, userID, draftID string, req *model.UpdateDraftRequest) (*model.Draft, error) {
	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := requireOrganizer(draft, userID); err != nil {
		return nil, err
	}
	if draft.Status != model.DraftStatusSetup {
		return nil, model.ErrInvalidState
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, model.ErrInvalidName
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.DraftType != nil {
		if !model.ValidDraftType(model.DraftType(*req.DraftType)) {
			return nil, model.ErrInvalidDraftType
		}
		updates["draft_type"] = *req.DraftType
	}
	if req.NumRounds != nil {
		if *req.NumRounds < 1 {
			return nil, model.ErrInvalidSettings
		}
		updates["num_rounds"] = *req.NumRounds
	}
	if req.PickTimerSeconds != nil {
		if *req.PickTimerSeconds < 0 {
			return nil, model.ErrInvalidSettings
		}
		updates["pick_timer_seconds"] = *req.PickTimerSeconds
	}
	if req.AutoPickOnTimeout != nil {
		updates["auto_pick_on_timeout"] = *req.AutoPickOnTimeout
	}
	if req.TradesEnabled != nil {
		updates["trades_enabled"] = *req.TradesEnabled
	}
	if req.TradeWindow != nil {
		if !model.ValidTradeWindow(*req.TradeWindow) {
			return nil, model.ErrInvalidSettings
		}
		updates["trade_window"] = *req.TradeWindow
	}
	if req.TradesRequireApproval != nil {
		updates["trades_require_approval"] = *req.TradesRequireApproval
	}
	if req.Visibility != nil {
		if !model.ValidVisibility(*req.Visibility) {
			return nil, model.ErrInvalidSettings
		}
		updates["visibility"] = *req.Visibility
	}

	if len(updates) > 0 {
		updates["updated_at"] = s.clock.Now().UTC()
		if err := s.repo.UpdateDraft(ctx, draftID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.GetDraft(ctx, draftID)
}

func (s *service) Delete(ctx context.Context, userID, draftID string) error {
	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if err := requireOrganizer(draft, userID); err != nil {
		return err
	}
	if draft.Status != model.DraftStatusSetup {
		return model.ErrInvalidState
	}

	if err := s.repo.DeleteDraft(ctx, draftID); err != nil {
		return err
	}
	s.logger.Infow("draft deleted", "draft_id", draftID, "deleted_by", userID)
	return nil
}
