// Package model defines the draft domain entities and their persistence mapping.
package model

import (
	"time"

	"gorm.io/gorm"
)

// DraftStatus is the lifecycle state of a draft.
type DraftStatus string

const (
	// DraftStatusSetup is the initial state: teams may be added and settings changed.
	DraftStatusSetup DraftStatus = "setup"
	// DraftStatusActive means picks are being made.
	DraftStatusActive DraftStatus = "active"
	// DraftStatusPaused means the draft is suspended and the pick clock cleared.
	DraftStatusPaused DraftStatus = "paused"
	// DraftStatusCompleted means every pick slot has been filled.
	DraftStatusCompleted DraftStatus = "completed"
)

// DraftType determines the turn order across rounds.
type DraftType string

const (
	// DraftTypeSnake alternates pick direction every round.
	DraftTypeSnake DraftType = "snake"
	// DraftTypeLinear keeps the same order every round.
	DraftTypeLinear DraftType = "linear"
)

// Visibility values for who may view a draft.
const (
	VisibilityCoaches = "coaches"
	VisibilityPublic  = "public"
)

// Trade window values. Trade settings are persisted for the trades feature
// but are not consumed by the pick engine.
const (
	TradeWindowDuringDraft = "during_draft"
	TradeWindowPostDraft   = "post_draft"
	TradeWindowBoth        = "both"
)

// Draft represents a live player draft for a combine event.
// Matches the drafts table schema.
type Draft struct {
	ID                    string      `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	EventID               string      `gorm:"column:event_id;type:varchar(64);not null;index" json:"event_id"`
	LeagueID              string      `gorm:"column:league_id;type:varchar(64);index" json:"league_id"`
	Name                  string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	AgeGroup              *string     `gorm:"column:age_group;type:varchar(16)" json:"age_group"`
	Status                DraftStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	DraftType             DraftType   `gorm:"column:draft_type;type:varchar(16);not null" json:"draft_type"`
	NumTeams              int         `gorm:"column:num_teams;not null;default:0" json:"num_teams"`
	NumRounds             *int        `gorm:"column:num_rounds" json:"num_rounds"`
	PickTimerSeconds      int         `gorm:"column:pick_timer_seconds;not null;default:0" json:"pick_timer_seconds"`
	AutoPickOnTimeout     bool        `gorm:"column:auto_pick_on_timeout;not null;default:false" json:"auto_pick_on_timeout"`
	TradesEnabled         bool        `gorm:"column:trades_enabled;not null;default:false" json:"trades_enabled"`
	TradeWindow           string      `gorm:"column:trade_window;type:varchar(16);not null;default:during_draft" json:"trade_window"`
	TradesRequireApproval bool        `gorm:"column:trades_require_approval;not null;default:true" json:"trades_require_approval"`
	Visibility            string      `gorm:"column:visibility;type:varchar(16);not null;default:coaches" json:"visibility"`
	TeamOrder             []string    `gorm:"column:team_order;serializer:json" json:"team_order"`
	CurrentRound          int         `gorm:"column:current_round;not null;default:0" json:"current_round"`
	CurrentPick           int         `gorm:"column:current_pick;not null;default:0" json:"current_pick"`
	CurrentTeamID         *string     `gorm:"column:current_team_id;type:varchar(64)" json:"current_team_id"`
	PickDeadline          *time.Time  `gorm:"column:pick_deadline" json:"pick_deadline"`
	CreatedAt             time.Time   `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt             time.Time   `gorm:"column:updated_at;not null" json:"-"`
	StartedAt             *time.Time  `gorm:"column:started_at" json:"started_at"`
	CompletedAt           *time.Time  `gorm:"column:completed_at" json:"completed_at"`
	CreatedBy             string      `gorm:"column:created_by;type:varchar(64);not null" json:"created_by"`
}

// TableName specifies the table name for GORM.
func (Draft) TableName() string {
	return "drafts"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (d *Draft) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return nil
}

// ValidDraftType reports whether t is a known draft type.
func ValidDraftType(t DraftType) bool {
	return t == DraftTypeSnake || t == DraftTypeLinear
}

// ValidVisibility reports whether v is a known visibility value.
func ValidVisibility(v string) bool {
	return v == VisibilityCoaches || v == VisibilityPublic
}

// ValidTradeWindow reports whether w is a known trade window value.
func ValidTradeWindow(w string) bool {
	return w == TradeWindowDuringDraft || w == TradeWindowPostDraft || w == TradeWindowBoth
}

// ValidStatus reports whether s is a known draft status.
func ValidStatus(s DraftStatus) bool {
	switch s {
	case DraftStatusSetup, DraftStatusActive, DraftStatusPaused, DraftStatusCompleted:
		return true
	}
	return false
}
