// Package repository provides data access layer for the draft module.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rsheln/combine-draft/internal/draft/model"
)

// Repository defines the interface for draft data access operations.
// Service code rebuilds a Repository over the transaction handle inside
// db.Transaction closures, so every method must work on a plain *gorm.DB.
type Repository interface {
	// CreateDraft creates a new draft.
	CreateDraft(ctx context.Context, draft *model.Draft) error

	// GetDraft finds a draft by ID.
	GetDraft(ctx context.Context, id string) (*model.Draft, error)

	// ListDrafts returns drafts, optionally filtered by event and league,
	// newest first.
	ListDrafts(ctx context.Context, eventID, leagueID string) ([]model.Draft, error)

	// UpdateDraft applies column updates to a draft. Slice values are
	// stored as JSON text, matching the serializer:json list columns.
	UpdateDraft(ctx context.Context, id string, updates map[string]interface{}) error

	// DeleteDraft removes a draft and all dependent rows.
	DeleteDraft(ctx context.Context, id string) error

	// CreateTeam creates a new team in a draft.
	CreateTeam(ctx context.Context, team *model.Team) error

	// GetTeam finds a team by ID within a draft.
	GetTeam(ctx context.Context, draftID, teamID string) (*model.Team, error)

	// ListTeams returns a draft's teams ordered by pick_order.
	ListTeams(ctx context.Context, draftID string) ([]model.Team, error)

	// UpdateTeam applies column updates to a team.
	UpdateTeam(ctx context.Context, draftID, teamID string, updates map[string]interface{}) error

	// DeleteTeam removes a team from a draft.
	DeleteTeam(ctx context.Context, draftID, teamID string) error

	// CreatePick records a pick.
	CreatePick(ctx context.Context, pick *model.Pick) error

	// ListPicks returns a draft's picks ordered by pick_number.
	ListPicks(ctx context.Context, draftID string) ([]model.Pick, error)

	// LastPick returns the highest-numbered pick of a draft, or nil when
	// no picks have been made.
	LastPick(ctx context.Context, draftID string) (*model.Pick, error)

	// DeletePick removes a pick by ID.
	DeletePick(ctx context.Context, pickID string) error

	// DraftedPlayerIDs returns the IDs of all players picked in a draft.
	DraftedPlayerIDs(ctx context.Context, draftID string) ([]string, error)

	// IsPlayerDrafted reports whether a player was already picked in a draft.
	IsPlayerDrafted(ctx context.Context, draftID, playerID string) (bool, error)

	// GetRanking returns a coach's ranking list for a draft, or nil when
	// the coach never saved one.
	GetRanking(ctx context.Context, draftID, coachUserID string) (*model.CoachRanking, error)

	// SaveRanking creates or replaces a coach's ranking list.
	SaveRanking(ctx context.Context, ranking *model.CoachRanking) error

	// ListRosters returns the rosters produced by a completed draft.
	ListRosters(ctx context.Context, draftID string) ([]model.TeamRoster, error)

	// ReplaceRosters deletes a draft's rosters and writes the given set.
	ReplaceRosters(ctx context.Context, draftID string, rosters []model.TeamRoster) error

	// DeleteRostersByDraft removes all rosters of a draft.
	DeleteRostersByDraft(ctx context.Context, draftID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new draft repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// marshalListColumns rewrites slice values in a column-update map as JSON
// text. The serializer:json tag only runs on struct writes; a raw slice in
// a map update renders as a row-value expression and the statement fails.
func marshalListColumns(updates map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(updates))
	for column, value := range updates {
		if ids, ok := value.([]string); ok {
			encoded, err := json.Marshal(ids)
			if err == nil {
				normalized[column] = string(encoded)
				continue
			}
		}
		normalized[column] = value
	}
	return normalized
}

func (r *repository) CreateDraft(ctx context.Context, draft *model.Draft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *repository) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	var draft model.Draft
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDraftNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (r *repository) ListDrafts(ctx context.Context, eventID, leagueID string) ([]model.Draft, error) {
	query := r.db.WithContext(ctx).Model(&model.Draft{})
	if eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if leagueID != "" {
		query = query.Where("league_id = ?", leagueID)
	}

	var drafts []model.Draft
	if err := query.Order("created_at DESC").Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *repository) UpdateDraft(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Draft{}).Where("id = ?", id).Updates(marshalListColumns(updates))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrDraftNotFound
	}
	return nil
}

func (r *repository) DeleteDraft(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	for _, m := range []interface{}{&model.Pick{}, &model.Team{}, &model.CoachRanking{}, &model.TeamRoster{}} {
		if err := db.Where("draft_id = ?", id).Delete(m).Error; err != nil {
			return err
		}
	}

	result := db.Where("id = ?", id).Delete(&model.Draft{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrDraftNotFound
	}
	return nil
}

func (r *repository) CreateTeam(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *repository) GetTeam(ctx context.Context, draftID, teamID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("draft_id = ? AND id = ?", draftID, teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) ListTeams(ctx context.Context, draftID string) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Order("pick_order ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repository) UpdateTeam(ctx context.Context, draftID, teamID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("draft_id = ? AND id = ?", draftID, teamID).
		Updates(marshalListColumns(updates))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}
	return nil
}

func (r *repository) DeleteTeam(ctx context.Context, draftID, teamID string) error {
	result := r.db.WithContext(ctx).
		Where("draft_id = ? AND id = ?", draftID, teamID).
		Delete(&model.Team{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}
	return nil
}

func (r *repository) CreatePick(ctx context.Context, pick *model.Pick) error {
	return r.db.WithContext(ctx).Create(pick).Error
}

func (r *repository) ListPicks(ctx context.Context, draftID string) ([]model.Pick, error) {
	var picks []model.Pick
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Order("pick_number ASC").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *repository) LastPick(ctx context.Context, draftID string) (*model.Pick, error) {
	var pick model.Pick
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Order("pick_number DESC").
		First(&pick).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pick, nil
}

func (r *repository) DeletePick(ctx context.Context, pickID string) error {
	return r.db.WithContext(ctx).Where("id = ?", pickID).Delete(&model.Pick{}).Error
}

func (r *repository) DraftedPlayerIDs(ctx context.Context, draftID string) ([]string, error) {
	var playerIDs []string
	err := r.db.WithContext(ctx).Model(&model.Pick{}).
		Where("draft_id = ?", draftID).
		Order("pick_number ASC").
		Pluck("player_id", &playerIDs).Error
	if err != nil {
		return nil, err
	}
	return playerIDs, nil
}

func (r *repository) IsPlayerDrafted(ctx context.Context, draftID, playerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pick{}).
		Where("draft_id = ? AND player_id = ?", draftID, playerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) GetRanking(ctx context.Context, draftID, coachUserID string) (*model.CoachRanking, error) {
	var ranking model.CoachRanking
	err := r.db.WithContext(ctx).
		Where("draft_id = ? AND coach_user_id = ?", draftID, coachUserID).
		First(&ranking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ranking, nil
}

func (r *repository) SaveRanking(ctx context.Context, ranking *model.CoachRanking) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "draft_id"}, {Name: "coach_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ranked_player_ids", "updated_at",
		}),
	}).Create(ranking).Error
}

func (r *repository) ListRosters(ctx context.Context, draftID string) ([]model.TeamRoster, error) {
	var rosters []model.TeamRoster
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Find(&rosters).Error
	if err != nil {
		return nil, err
	}
	return rosters, nil
}

func (r *repository) ReplaceRosters(ctx context.Context, draftID string, rosters []model.TeamRoster) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("draft_id = ?", draftID).Delete(&model.TeamRoster{}).Error; err != nil {
		return err
	}
	if len(rosters) == 0 {
		return nil
	}
	return db.Create(&rosters).Error
}

func (r *repository) DeleteRostersByDraft(ctx context.Context, draftID string) error {
	return r.db.WithContext(ctx).Where("draft_id = ?", draftID).Delete(&model.TeamRoster{}).Error
}
