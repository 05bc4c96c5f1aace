package model

import "time"

// TeamRoster is the final roster for one team, projected from the pick
// ledger when a draft completes. Rosters are a derived artifact: reopening
// a draft via undo discards them and recompletion rebuilds them.
// Matches the team_rosters table schema.
type TeamRoster struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	DraftID     string    `gorm:"column:draft_id;type:varchar(64);not null;index" json:"draft_id"`
	EventID     string    `gorm:"column:event_id;type:varchar(64);not null" json:"event_id"`
	LeagueID    string    `gorm:"column:league_id;type:varchar(64)" json:"league_id"`
	TeamID      string    `gorm:"column:team_id;type:varchar(64);not null" json:"team_id"`
	TeamName    string    `gorm:"column:team_name;type:varchar(255);not null" json:"team_name"`
	CoachUserID *string   `gorm:"column:coach_user_id;type:varchar(64)" json:"coach_user_id"`
	CoachName   *string   `gorm:"column:coach_name;type:varchar(255)" json:"coach_name"`
	PlayerIDs   []string  `gorm:"column:player_ids;serializer:json" json:"player_ids"`
	CreatedFrom string    `gorm:"column:created_from;type:varchar(16);not null;default:draft" json:"created_from"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (TeamRoster) TableName() string {
	return "team_rosters"
}
