package db_models

import "github.com/google/uuid"

type GameType string

const (
	GameTypeMemory  GameType = "memory"
	GameTypeLogic   GameType = "logic"
	GameTypeMath    GameType = "math"
	GameTypePattern GameType = "pattern"
)

type GameDifficulty string

const (
	DifficultyEasy   GameDifficulty = "easy"
	DifficultyMedium GameDifficulty = "medium"
	DifficultyHard   GameDifficulty = "hard"
)

// Minigame records a single play session.
type Minigame struct {
	BaseModel
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`

	GameType     GameType       `gorm:"index;not null" json:"game_type"`
	Score        int64          `gorm:"default:0" json:"score"`
	TimeSpent    int64          `gorm:"default:0" json:"time_spent"` // seconds
	Difficulty   GameDifficulty `gorm:"default:'medium'" json:"difficulty"`
	Completed    bool           `gorm:"default:false" json:"completed"`
	PointsEarned int64          `gorm:"default:0" json:"points_earned"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
