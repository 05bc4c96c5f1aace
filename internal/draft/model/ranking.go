package model

import (
	"time"

	"gorm.io/gorm"
)

// CoachRanking is a coach's preferred player order for a draft, used by the
// auto-picker before falling back to composite scores. At most one ranking
// exists per (draft, coach) pair.
// Matches the coach_rankings table schema.
type CoachRanking struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	DraftID         string    `gorm:"column:draft_id;type:varchar(64);not null;uniqueIndex:uniq_rankings_draft_coach" json:"draft_id"`
	CoachUserID     string    `gorm:"column:coach_user_id;type:varchar(64);not null;uniqueIndex:uniq_rankings_draft_coach" json:"coach_user_id"`
	RankedPlayerIDs []string  `gorm:"column:ranked_player_ids;serializer:json" json:"ranked_player_ids"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CoachRanking) TableName() string {
	return "coach_rankings"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *CoachRanking) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
