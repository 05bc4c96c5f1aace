package service

import (
	"context"

	"github.com/rsheln/combine-draft/internal/draft/model"
)

// GetRankings returns the caller's saved preference order, or an empty
// ranking when none was saved yet.
func (s *service) GetRankings(ctx context.Context, userID, draftID string) (*model.CoachRanking, error) {
	if _, err := s.repo.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}

	ranking, err := s.repo.GetRanking(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		return &model.CoachRanking{
			DraftID:         draftID,
			CoachUserID:     userID,
			RankedPlayerIDs: []string{},
		}, nil
	}
	return ranking, nil
}

// SaveRankings creates or replaces the caller's preference order. Saved
// lists feed the auto-picker before the composite-score fallback.
func (s *service) SaveRankings(ctx context.Context, userID, draftID string, req *model.SaveRankingsRequest) (*model.CoachRanking, error) {
	if _, err := s.repo.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	ranking := &model.CoachRanking{
		ID:              newID("rank_"),
		DraftID:         draftID,
		CoachUserID:     userID,
		RankedPlayerIDs: req.RankedPlayerIDs,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.SaveRanking(ctx, ranking); err != nil {
		return nil, err
	}

	saved, err := s.repo.GetRanking(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("rankings saved", "draft_id", draftID, "coach_user_id", userID, "players", len(req.RankedPlayerIDs))
	return saved, nil
}
