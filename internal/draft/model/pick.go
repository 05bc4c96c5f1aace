package model

import "time"

// PickType distinguishes picks made by a person from clock-expiry picks.
type PickType string

const (
	// PickTypeManual is a pick submitted by the organizer or the on-the-clock coach.
	PickTypeManual PickType = "manual"
	// PickTypeAuto is a pick made by the system after the pick clock expired.
	PickTypeAuto PickType = "auto"
)

// SystemActor is recorded as picked_by for automatic picks.
const SystemActor = "system"

// Pick is one entry in the append-only pick ledger. Exactly one pick exists
// per pick_number and a player can be drafted at most once per draft; both
// are enforced with unique indexes.
// Matches the draft_picks table schema.
type Pick struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	DraftID     string    `gorm:"column:draft_id;type:varchar(64);not null;uniqueIndex:uniq_picks_draft_number;uniqueIndex:uniq_picks_draft_player" json:"draft_id"`
	Round       int       `gorm:"column:round;not null" json:"round"`
	PickNumber  int       `gorm:"column:pick_number;not null;uniqueIndex:uniq_picks_draft_number" json:"pick_number"`
	PickInRound int       `gorm:"column:pick_in_round;not null" json:"pick_in_round"`
	TeamID      string    `gorm:"column:team_id;type:varchar(64);not null" json:"team_id"`
	PlayerID    string    `gorm:"column:player_id;type:varchar(64);not null;uniqueIndex:uniq_picks_draft_player" json:"player_id"`
	PickedBy    string    `gorm:"column:picked_by;type:varchar(64);not null" json:"picked_by"`
	PickType    PickType  `gorm:"column:pick_type;type:varchar(16);not null" json:"pick_type"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Pick) TableName() string {
	return "draft_picks"
}
