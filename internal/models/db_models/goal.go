package db_models

import "github.com/google/uuid"

type GoalCategory string

const (
	GoalCategoryFinance      GoalCategory = "finance"
	GoalCategoryHealth       GoalCategory = "health"
	GoalCategoryProductivity GoalCategory = "productivity"
	GoalCategoryLearning     GoalCategory = "learning"
)

type Goal struct {
	BaseModel
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`

	Title       string       `gorm:"not null" json:"title"`
	Description *string      `json:"description,omitempty"`
	Category    GoalCategory `gorm:"index;not null" json:"category"`
	TargetDate  *int64       `json:"target_date,omitempty"`

	// Set once; completion awards RewardPoints to the owner's reward row.
	Completed    bool  `gorm:"default:false" json:"completed"`
	RewardPoints int64 `gorm:"default:0" json:"reward_points"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
