package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/repository"
	"github.com/rsheln/combine-draft/internal/draft/schedule"
	playerModel "github.com/rsheln/combine-draft/internal/player/model"
	playerRepository "github.com/rsheln/combine-draft/internal/player/repository"
	"github.com/rsheln/combine-draft/internal/player/scoring"
)

// MakePick drafts a player into the current slot. The whole
// check-append-advance sequence runs inside one transaction under the
// draft's mutex so concurrent picks for the same slot cannot both land.
func (s *service) MakePick(ctx context.Context, userID, draftID string, req *model.MakePickRequest) (*model.Pick, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	var pick *model.Pick
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txPlayers := playerRepository.New(tx)

		draft, err := txRepo.GetDraft(ctx, draftID)
		if err != nil {
			return err
		}
		if draft.Status != model.DraftStatusActive {
			return model.ErrInvalidState
		}

		team, err := s.teamOnClockFor(ctx, txRepo, draft)
		if err != nil {
			return err
		}
		if !canPickFor(draft, team, userID) {
			return model.ErrNotYourTurn
		}

		if err := checkPickable(ctx, txRepo, txPlayers, draft, req.PlayerID); err != nil {
			return err
		}

		pick, err = s.recordPick(ctx, txRepo, draft, req.PlayerID, userID, model.PickTypeManual)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("pick made",
		"draft_id", draftID,
		"pick_number", pick.PickNumber,
		"team_id", pick.TeamID,
		"player_id", pick.PlayerID,
		"picked_by", userID,
	)
	return pick, nil
}

// AutoPick fills the current slot for a team whose clock ran out. Clients
// poll for expiry; the first trigger after the deadline wins and later ones
// fail the expiry check against the refreshed deadline.
func (s *service) AutoPick(ctx context.Context, draftID string) (*model.Pick, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	var pick *model.Pick
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txPlayers := playerRepository.New(tx)

		draft, err := txRepo.GetDraft(ctx, draftID)
		if err != nil {
			return err
		}
		if draft.Status != model.DraftStatusActive {
			return model.ErrInvalidState
		}
		if !draft.AutoPickOnTimeout {
			return model.ErrAutoPickDisabled
		}
		if draft.PickDeadline == nil || s.clock.Now().Before(*draft.PickDeadline) {
			return model.ErrTimerNotExpired
		}

		team, err := s.teamOnClockFor(ctx, txRepo, draft)
		if err != nil {
			return err
		}

		playerID, err := s.selectAutoPick(ctx, txRepo, txPlayers, draft, team)
		if err != nil {
			return err
		}

		pick, err = s.recordPick(ctx, txRepo, draft, playerID, model.SystemActor, model.PickTypeAuto)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("auto pick made",
		"draft_id", draftID,
		"pick_number", pick.PickNumber,
		"team_id", pick.TeamID,
		"player_id", pick.PlayerID,
	)
	return pick, nil
}

// UndoLastPick removes the newest ledger entry and puts its slot back on
// the clock. Undoing the final pick reopens a completed draft and discards
// the projected rosters.
func (s *service) UndoLastPick(ctx context.Context, userID, draftID string) (*model.UndoPickResponse, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	var resp *model.UndoPickResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		draft, err := txRepo.GetDraft(ctx, draftID)
		if err != nil {
			return err
		}
		if err := requireOrganizer(draft, userID); err != nil {
			return err
		}
		switch draft.Status {
		case model.DraftStatusActive, model.DraftStatusPaused, model.DraftStatusCompleted:
		default:
			return model.ErrInvalidState
		}

		last, err := txRepo.LastPick(ctx, draftID)
		if err != nil {
			return err
		}
		if last == nil {
			return model.ErrNoPicksToUndo
		}
		if err := txRepo.DeletePick(ctx, last.ID); err != nil {
			return err
		}

		status := draft.Status
		now := s.clock.Now().UTC()
		updates := map[string]interface{}{
			"current_round":   last.Round,
			"current_pick":    last.PickNumber,
			"current_team_id": last.TeamID,
			"pick_deadline":   nil,
			"updated_at":      now,
		}
		if status == model.DraftStatusCompleted {
			status = model.DraftStatusActive
			updates["status"] = status
			updates["completed_at"] = nil
			if err := txRepo.DeleteRostersByDraft(ctx, draftID); err != nil {
				return err
			}
		}
		if status == model.DraftStatusActive && draft.PickTimerSeconds > 0 {
			updates["pick_deadline"] = now.Add(time.Duration(draft.PickTimerSeconds) * time.Second)
		}
		if err := txRepo.UpdateDraft(ctx, draftID, updates); err != nil {
			return err
		}

		resp = &model.UndoPickResponse{Status: "undone", PickID: last.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("pick undone", "draft_id", draftID, "pick_id", resp.PickID, "undone_by", userID)
	return resp, nil
}

func (s *service) ListPicks(ctx context.Context, draftID string) ([]model.Pick, error) {
	if _, err := s.repo.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}
	return s.repo.ListPicks(ctx, draftID)
}

// AvailablePlayers returns the eligible pool minus drafted players, best
// score first so clients can show a sensible default board.
func (s *service) AvailablePlayers(ctx context.Context, draftID string) ([]playerModel.Player, error) {
	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	pool, err := eligiblePlayers(ctx, s.players, draft)
	if err != nil {
		return nil, err
	}
	draftedIDs, err := s.repo.DraftedPlayerIDs(ctx, draftID)
	if err != nil {
		return nil, err
	}

	drafted := make(map[string]bool, len(draftedIDs))
	for _, id := range draftedIDs {
		drafted[id] = true
	}
	available := make([]playerModel.Player, 0, len(pool))
	for _, player := range pool {
		if !drafted[player.ID] {
			available = append(available, player)
		}
	}
	return scoring.Rank(available, s.scores), nil
}

func (s *service) DraftedPlayers(ctx context.Context, draftID string) ([]model.DraftedPlayer, error) {
	picks, err := s.ListPicks(ctx, draftID)
	if err != nil {
		return nil, err
	}

	drafted := make([]model.DraftedPlayer, 0, len(picks))
	for _, pick := range picks {
		entry := model.DraftedPlayer{Pick: pick}
		player, err := s.players.GetByID(ctx, pick.PlayerID)
		if err == nil {
			entry.Player = player
		}
		drafted = append(drafted, entry)
	}
	return drafted, nil
}

// teamOnClockFor resolves the team owning the draft's current slot.
func (s *service) teamOnClockFor(ctx context.Context, repo repository.Repository, draft *model.Draft) (*model.Team, error) {
	if draft.CurrentTeamID == nil {
		return nil, model.ErrInvalidState
	}
	return repo.GetTeam(ctx, draft.ID, *draft.CurrentTeamID)
}

// canPickFor reports whether the caller may submit the current pick: the
// organizer can always pick, a coach only for their own team on the clock.
func canPickFor(draft *model.Draft, team *model.Team, userID string) bool {
	if draft.CreatedBy == userID {
		return true
	}
	return team.CoachUserID != nil && *team.CoachUserID == userID
}

// checkPickable verifies the player exists, belongs to the draft's pool and
// is not already on the ledger. Both repositories must share the caller's
// transaction handle.
func checkPickable(ctx context.Context, repo repository.Repository, players playerRepository.Repository, draft *model.Draft, playerID string) error {
	player, err := players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player.EventID != draft.EventID {
		return playerModel.ErrPlayerNotFound
	}
	if draft.AgeGroup != nil && (player.AgeGroup == nil || *player.AgeGroup != *draft.AgeGroup) {
		return playerModel.ErrPlayerNotFound
	}

	taken, err := repo.IsPlayerDrafted(ctx, draft.ID, playerID)
	if err != nil {
		return err
	}
	if taken {
		return model.ErrPlayerDrafted
	}
	return nil
}

// selectAutoPick chooses the best available player for the team on the
// clock: its coach's saved ranking first, then composite-score order.
func (s *service) selectAutoPick(ctx context.Context, repo repository.Repository, players playerRepository.Repository, draft *model.Draft, team *model.Team) (string, error) {
	pool, err := eligiblePlayers(ctx, players, draft)
	if err != nil {
		return "", err
	}
	draftedIDs, err := repo.DraftedPlayerIDs(ctx, draft.ID)
	if err != nil {
		return "", err
	}
	drafted := make(map[string]bool, len(draftedIDs))
	for _, id := range draftedIDs {
		drafted[id] = true
	}

	available := make([]playerModel.Player, 0, len(pool))
	availableIDs := make(map[string]bool, len(pool))
	for _, player := range pool {
		if !drafted[player.ID] {
			available = append(available, player)
			availableIDs[player.ID] = true
		}
	}
	if len(available) == 0 {
		return "", model.ErrNoPlayersAvailable
	}

	if team.CoachUserID != nil {
		ranking, err := repo.GetRanking(ctx, draft.ID, *team.CoachUserID)
		if err != nil {
			return "", err
		}
		if ranking != nil {
			for _, id := range ranking.RankedPlayerIDs {
				if availableIDs[id] {
					return id, nil
				}
			}
		}
	}

	return scoring.Rank(available, s.scores)[0].ID, nil
}

// recordPick appends a ledger entry for the draft's current slot and
// advances the clock, completing the draft when the slot was the last one.
// Must run inside the caller's transaction.
func (s *service) recordPick(ctx context.Context, repo repository.Repository, draft *model.Draft, playerID, pickedBy string, pickType model.PickType) (*model.Pick, error) {
	numRounds := 0
	if draft.NumRounds != nil {
		numRounds = *draft.NumRounds
	}

	slot, ok := schedule.SlotFor(draft.TeamOrder, draft.DraftType, numRounds, draft.CurrentPick)
	if !ok {
		return nil, model.ErrInvalidState
	}

	now := s.clock.Now().UTC()
	pick := &model.Pick{
		ID:          newID("pick_"),
		DraftID:     draft.ID,
		Round:       slot.Round,
		PickNumber:  slot.PickNumber,
		PickInRound: slot.PickInRound,
		TeamID:      slot.TeamID,
		PlayerID:    playerID,
		PickedBy:    pickedBy,
		PickType:    pickType,
		CreatedAt:   now,
	}
	if err := repo.CreatePick(ctx, pick); err != nil {
		return nil, err
	}

	next, ok := schedule.Advance(draft.TeamOrder, draft.DraftType, numRounds, draft.CurrentPick)
	if !ok {
		if err := s.completeDraft(ctx, repo, draft, now); err != nil {
			return nil, err
		}
		return pick, nil
	}

	updates := map[string]interface{}{
		"current_round":   next.Round,
		"current_pick":    next.PickNumber,
		"current_team_id": next.TeamID,
		"pick_deadline":   nil,
		"updated_at":      now,
	}
	if draft.PickTimerSeconds > 0 {
		updates["pick_deadline"] = now.Add(time.Duration(draft.PickTimerSeconds) * time.Second)
	}
	if err := repo.UpdateDraft(ctx, draft.ID, updates); err != nil {
		return nil, err
	}
	return pick, nil
}

// completeDraft marks the draft finished and projects the ledger into one
// roster per team. Rosters are replaced wholesale so a reopened and
// recompleted draft never keeps stale entries.
func (s *service) completeDraft(ctx context.Context, repo repository.Repository, draft *model.Draft, now time.Time) error {
	err := repo.UpdateDraft(ctx, draft.ID, map[string]interface{}{
		"status":          model.DraftStatusCompleted,
		"completed_at":    now,
		"current_team_id": nil,
		"pick_deadline":   nil,
		"updated_at":      now,
	})
	if err != nil {
		return err
	}

	teams, err := repo.ListTeams(ctx, draft.ID)
	if err != nil {
		return err
	}
	picks, err := repo.ListPicks(ctx, draft.ID)
	if err != nil {
		return err
	}

	byTeam := make(map[string][]string, len(teams))
	for _, pick := range picks {
		byTeam[pick.TeamID] = append(byTeam[pick.TeamID], pick.PlayerID)
	}

	rosters := make([]model.TeamRoster, 0, len(teams))
	for _, team := range teams {
		playerIDs := byTeam[team.ID]
		if playerIDs == nil {
			playerIDs = []string{}
		}
		rosters = append(rosters, model.TeamRoster{
			ID:          newID("roster_"),
			DraftID:     draft.ID,
			EventID:     draft.EventID,
			LeagueID:    draft.LeagueID,
			TeamID:      team.ID,
			TeamName:    team.TeamName,
			CoachUserID: team.CoachUserID,
			CoachName:   team.CoachName,
			PlayerIDs:   playerIDs,
			CreatedFrom: "draft",
			CreatedAt:   now,
		})
	}
	if err := repo.ReplaceRosters(ctx, draft.ID, rosters); err != nil {
		return err
	}

	s.logger.Infow("draft completed", "draft_id", draft.ID, "total_picks", len(picks))
	return nil
}
