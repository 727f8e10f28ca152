package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reward accumulates a user's points, level and achievements. One row per
// user in practice; created lazily on the first point award.
type Reward struct {
	BaseModel
	UserID uuid.UUID `gorm:"uniqueIndex;not null" json:"user_id"`

	TotalPoints int64 `gorm:"default:0" json:"total_points"`
	Level       int   `gorm:"default:1" json:"level"`

	// Ordered list of achievement identifiers.
	Achievements  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"achievements"`
	LastMilestone *string        `json:"last_milestone,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
