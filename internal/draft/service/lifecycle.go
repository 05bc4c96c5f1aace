package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/repository"
	playerRepository "github.com/rsheln/combine-draft/internal/player/repository"
)

// Start activates a draft. The team order is frozen from the current
// pick_order, the round count is resolved from the player pool when the
// organizer never set one, and the first team goes on the clock.
func (s *service) Start(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	var (
		started *model.Draft
		rounds  int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		draft, err := txRepo.GetDraft(ctx, draftID)
		if err != nil {
			return err
		}
		if err := requireOrganizer(draft, userID); err != nil {
			return err
		}
		if draft.Status != model.DraftStatusSetup {
			return model.ErrInvalidState
		}

		teams, err := txRepo.ListTeams(ctx, draftID)
		if err != nil {
			return err
		}
		if len(teams) < 2 {
			return model.ErrInsufficientTeams
		}

		teamOrder := make([]string, len(teams))
		for i, team := range teams {
			teamOrder[i] = team.ID
		}

		numRounds := 0
		if draft.NumRounds != nil {
			numRounds = *draft.NumRounds
		} else {
			pool, err := eligiblePlayers(ctx, playerRepository.New(tx), draft)
			if err != nil {
				return err
			}
			numRounds = len(pool) / len(teams)
			if numRounds < 1 {
				numRounds = 1
			}
		}
		rounds = numRounds

		now := s.clock.Now().UTC()
		updates := map[string]interface{}{
			"status":          model.DraftStatusActive,
			"team_order":      teamOrder,
			"num_teams":       len(teams),
			"num_rounds":      numRounds,
			"current_round":   1,
			"current_pick":    1,
			"current_team_id": teamOrder[0],
			"started_at":      now,
			"updated_at":      now,
			"pick_deadline":   nil,
		}
		if draft.PickTimerSeconds > 0 {
			updates["pick_deadline"] = now.Add(time.Duration(draft.PickTimerSeconds) * time.Second)
		}
		if err := txRepo.UpdateDraft(ctx, draftID, updates); err != nil {
			return err
		}

		started, err = txRepo.GetDraft(ctx, draftID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("draft started",
		"draft_id", draftID,
		"num_teams", started.NumTeams,
		"num_rounds", rounds,
		"on_clock", teamOnClock(started),
	)
	return started, nil
}

func teamOnClock(draft *model.Draft) string {
	if draft.CurrentTeamID == nil {
		return ""
	}
	return *draft.CurrentTeamID
}

// Pause suspends an active draft. The pick clock is cleared so nothing
// expires while paused.
func (s *service) Pause(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := requireOrganizer(draft, userID); err != nil {
		return nil, err
	}
	if draft.Status != model.DraftStatusActive {
		return nil, model.ErrInvalidState
	}

	err = s.repo.UpdateDraft(ctx, draftID, map[string]interface{}{
		"status":        model.DraftStatusPaused,
		"pick_deadline": nil,
		"updated_at":    s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("draft paused", "draft_id", draftID)
	return s.repo.GetDraft(ctx, draftID)
}

// Resume reactivates a paused draft. The team on the clock gets a fresh
// full timer rather than whatever remained at pause time.
func (s *service) Resume(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	mu := s.draftLock(draftID)
	mu.Lock()
	defer mu.Unlock()

	draft, err := s.repo.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := requireOrganizer(draft, userID); err != nil {
		return nil, err
	}
	if draft.Status != model.DraftStatusPaused {
		return nil, model.ErrInvalidState
	}

	now := s.clock.Now().UTC()
	updates := map[string]interface{}{
		"status":        model.DraftStatusActive,
		"pick_deadline": nil,
		"updated_at":    now,
	}
	if draft.PickTimerSeconds > 0 {
		updates["pick_deadline"] = now.Add(time.Duration(draft.PickTimerSeconds) * time.Second)
	}
	if err := s.repo.UpdateDraft(ctx, draftID, updates); err != nil {
		return nil, err
	}

	s.logger.Infow("draft resumed", "draft_id", draftID)
	return s.repo.GetDraft(ctx, draftID)
}
