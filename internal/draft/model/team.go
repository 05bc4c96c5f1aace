package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a draft participant team.
// Matches the draft_teams table schema.
type Team struct {
	ID                  string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	DraftID             string    `gorm:"column:draft_id;type:varchar(64);not null;index" json:"draft_id"`
	TeamName            string    `gorm:"column:team_name;type:varchar(255);not null" json:"team_name"`
	CoachUserID         *string   `gorm:"column:coach_user_id;type:varchar(64)" json:"coach_user_id"`
	CoachName           *string   `gorm:"column:coach_name;type:varchar(255)" json:"coach_name"`
	PickOrder           int       `gorm:"column:pick_order;not null" json:"pick_order"`
	PreSlottedPlayerIDs []string  `gorm:"column:pre_slotted_player_ids;serializer:json" json:"pre_slotted_player_ids"`
	CreatedAt           time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "draft_teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
