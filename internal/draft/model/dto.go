package model

import (
	playerModel "github.com/rsheln/combine-draft/internal/player/model"
)

// CreateDraftRequest represents the request to create a draft.
type CreateDraftRequest struct {
	Name                  string  `json:"name" binding:"required"`
	EventID               string  `json:"event_id" binding:"required"`
	LeagueID              string  `json:"league_id"`
	AgeGroup              *string `json:"age_group"`
	DraftType             string  `json:"draft_type"`
	NumRounds             *int    `json:"num_rounds"`
	PickTimerSeconds      *int    `json:"pick_timer_seconds"`
	AutoPickOnTimeout     *bool   `json:"auto_pick_on_timeout"`
	TradesEnabled         *bool   `json:"trades_enabled"`
	TradeWindow           *string `json:"trade_window"`
	TradesRequireApproval *bool   `json:"trades_require_approval"`
	Visibility            *string `json:"visibility"`
}

// UpdateDraftRequest represents a partial settings update; nil fields are untouched.
type UpdateDraftRequest struct {
	Name                  *string `json:"name"`
	DraftType             *string `json:"draft_type"`
	NumRounds             *int    `json:"num_rounds"`
	PickTimerSeconds      *int    `json:"pick_timer_seconds"`
	AutoPickOnTimeout     *bool   `json:"auto_pick_on_timeout"`
	TradesEnabled         *bool   `json:"trades_enabled"`
	TradeWindow           *string `json:"trade_window"`
	TradesRequireApproval *bool   `json:"trades_require_approval"`
	Visibility            *string `json:"visibility"`
}

// CreateTeamRequest represents the request to add a team to a draft.
type CreateTeamRequest struct {
	TeamName    string  `json:"team_name" binding:"required"`
	CoachUserID *string `json:"coach_user_id"`
	CoachName   *string `json:"coach_name"`
}

// UpdateTeamRequest represents a partial team update; nil fields are untouched.
type UpdateTeamRequest struct {
	TeamName    *string `json:"team_name"`
	CoachUserID *string `json:"coach_user_id"`
	CoachName   *string `json:"coach_name"`
}

// ReorderTeamsRequest carries the explicit team id ordering; pick_order is
// assigned 1-based from slice position.
type ReorderTeamsRequest struct {
	TeamIDs []string `json:"team_ids" binding:"required"`
}

// MakePickRequest represents the request to draft a player.
type MakePickRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// SaveRankingsRequest represents a coach's full preference order.
type SaveRankingsRequest struct {
	RankedPlayerIDs []string `json:"ranked_player_ids" binding:"required"`
}

// PreSlotRequest pre-assigns a player to a team before the draft starts.
type PreSlotRequest struct {
	PlayerID string  `json:"player_id" binding:"required"`
	TeamID   string  `json:"team_id" binding:"required"`
	Reason   *string `json:"reason"`
}

// DraftDetail is a draft together with its teams and pick ledger.
type DraftDetail struct {
	Draft
	Teams []Team `json:"teams"`
	Picks []Pick `json:"picks"`
}

// DraftedPlayer is one ledger entry enriched with the player record.
// Player is nil when the record has since been removed.
type DraftedPlayer struct {
	Pick   Pick                `json:"pick"`
	Player *playerModel.Player `json:"player,omitempty"`
}

// UndoPickResponse reports which pick was removed.
type UndoPickResponse struct {
	Status string `json:"status"`
	PickID string `json:"pick_id"`
}
