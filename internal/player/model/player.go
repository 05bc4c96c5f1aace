// Package model provides the player entity consumed by the draft engine.
package model

import "time"

// Player represents a combine participant eligible for drafting.
// Matches the players table schema. Evaluation details beyond the composite
// score live outside the draft engine; auto-pick only needs the score.
type Player struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	EventID        string    `gorm:"column:event_id;type:varchar(64);not null;index" json:"event_id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	AgeGroup       *string   `gorm:"column:age_group;type:varchar(16)" json:"age_group"`
	CompositeScore *float64  `gorm:"column:composite_score" json:"composite_score"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}
