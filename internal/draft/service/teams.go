package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/repository"
)

// setupDraft loads a draft and checks the caller may change its composition:
// organizer only, and only before the draft has started.
func (s *service) setupDraft(ctx context.Context, repo repository.Repository, userID, draftID string) (*model.Draft, error) {
	draft, err := repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := requireOrganizer(draft, userID); err != nil {
		return nil, err
	}
	if draft.Status != model.DraftStatusSetup {
		return nil, model.ErrInvalidState
	}
	return draft, nil
}

func (s *service) AddTeam(ctx context.Context, userID, draftID string, req *model.CreateTeamRequest) (*model.Team, error) {
	if strings.TrimSpace(req.TeamName) == "" {
		return nil, model.ErrInvalidTeamName
	}

	var team *model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := s.setupDraft(ctx, txRepo, userID, draftID); err != nil {
			return err
		}
		teams, err := txRepo.ListTeams(ctx, draftID)
		if err != nil {
			return err
		}

		now := s.clock.Now().UTC()
		team = &model.Team{
			ID:          newID("team_"),
			DraftID:     draftID,
			TeamName:    strings.TrimSpace(req.TeamName),
			CoachUserID: req.CoachUserID,
			CoachName:   req.CoachName,
			PickOrder:   len(teams) + 1,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := txRepo.CreateTeam(ctx, team); err != nil {
			return err
		}
		return txRepo.UpdateDraft(ctx, draftID, map[string]interface{}{
			"num_teams":  len(teams) + 1,
			"updated_at": now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team added", "draft_id", draftID, "team_id", team.ID, "pick_order", team.PickOrder)
	return team, nil
}

func (s *service) ListTeams(ctx context.Context, draftID string) ([]model.Team, error) {
	if _, err := s.repo.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}
	return s.repo.ListTeams(ctx, draftID)
}

func (s *service) UpdateTeam(ctx context.Context, userID, draftID, teamID string, req *model.UpdateTeamRequest) (*model.Team, error) {
	if _, err := s.setupDraft(ctx, s.repo, userID, draftID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.TeamName != nil {
		if strings.TrimSpace(*req.TeamName) == "" {
			return nil, model.ErrInvalidTeamName
		}
		updates["team_name"] = strings.TrimSpace(*req.TeamName)
	}
	if req.CoachUserID != nil {
		updates["coach_user_id"] = *req.CoachUserID
	}
	if req.CoachName != nil {
		updates["coach_name"] = *req.CoachName
	}

	if len(updates) > 0 {
		updates["updated_at"] = s.clock.Now().UTC()
		if err := s.repo.UpdateTeam(ctx, draftID, teamID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.GetTeam(ctx, draftID, teamID)
}

// RemoveTeam drops a team and renumbers the survivors to a dense 1..n
// pick_order so the frozen order at start time has no gaps.
func (s *service) RemoveTeam(ctx context.Context, userID, draftID, teamID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := s.setupDraft(ctx, txRepo, userID, draftID); err != nil {
			return err
		}
		if err := txRepo.DeleteTeam(ctx, draftID, teamID); err != nil {
			return err
		}

		teams, err := txRepo.ListTeams(ctx, draftID)
		if err != nil {
			return err
		}
		now := s.clock.Now().UTC()
		for i, team := range teams {
			if team.PickOrder == i+1 {
				continue
			}
			err := txRepo.UpdateTeam(ctx, draftID, team.ID, map[string]interface{}{
				"pick_order": i + 1,
				"updated_at": now,
			})
			if err != nil {
				return err
			}
		}
		return txRepo.UpdateDraft(ctx, draftID, map[string]interface{}{
			"num_teams":  len(teams),
			"updated_at": now,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Infow("team removed", "draft_id", draftID, "team_id", teamID)
	return nil
}

// ReorderTeams applies an explicit ordering. The request must name each of
// the draft's teams exactly once.
func (s *service) ReorderTeams(ctx context.Context, userID, draftID string, req *model.ReorderTeamsRequest) ([]model.Team, error) {
	var reordered []model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := s.setupDraft(ctx, txRepo, userID, draftID); err != nil {
			return err
		}
		teams, err := txRepo.ListTeams(ctx, draftID)
		if err != nil {
			return err
		}

		if len(req.TeamIDs) != len(teams) {
			return model.ErrInvalidTeamOrder
		}
		existing := make(map[string]bool, len(teams))
		for _, team := range teams {
			existing[team.ID] = true
		}
		seen := make(map[string]bool, len(req.TeamIDs))
		for _, id := range req.TeamIDs {
			if !existing[id] || seen[id] {
				return model.ErrInvalidTeamOrder
			}
			seen[id] = true
		}

		now := s.clock.Now().UTC()
		for i, id := range req.TeamIDs {
			err := txRepo.UpdateTeam(ctx, draftID, id, map[string]interface{}{
				"pick_order": i + 1,
				"updated_at": now,
			})
			if err != nil {
				return err
			}
		}

		reordered, err = txRepo.ListTeams(ctx, draftID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("teams reordered", "draft_id", draftID)
	return reordered, nil
}

// AddPreSlot records a player as committed to a team ahead of the draft.
// Pre-slots are bookkeeping for the organizer; the pick flow does not
// enforce them.
func (s *service) AddPreSlot(ctx context.Context, userID, draftID string, req *model.PreSlotRequest) (*model.Team, error) {
	if _, err := s.setupDraft(ctx, s.repo, userID, draftID); err != nil {
		return nil, err
	}
	if _, err := s.players.GetByID(ctx, req.PlayerID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetTeam(ctx, draftID, req.TeamID)
	if err != nil {
		return nil, err
	}
	for _, id := range team.PreSlottedPlayerIDs {
		if id == req.PlayerID {
			return team, nil
		}
	}

	slotted := append(team.PreSlottedPlayerIDs, req.PlayerID)
	err = s.repo.UpdateTeam(ctx, draftID, req.TeamID, map[string]interface{}{
		"pre_slotted_player_ids": slotted,
		"updated_at":             s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetTeam(ctx, draftID, req.TeamID)
}

func (s *service) RemovePreSlot(ctx context.Context, userID, draftID, teamID, playerID string) (*model.Team, error) {
	if _, err := s.setupDraft(ctx, s.repo, userID, draftID); err != nil {
		return nil, err
	}
	team, err := s.repo.GetTeam(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}

	slotted := make([]string, 0, len(team.PreSlottedPlayerIDs))
	for _, id := range team.PreSlottedPlayerIDs {
		if id != playerID {
			slotted = append(slotted, id)
		}
	}
	if len(slotted) == len(team.PreSlottedPlayerIDs) {
		return team, nil
	}

	err = s.repo.UpdateTeam(ctx, draftID, teamID, map[string]interface{}{
		"pre_slotted_player_ids": slotted,
		"updated_at":             s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetTeam(ctx, draftID, teamID)
}
