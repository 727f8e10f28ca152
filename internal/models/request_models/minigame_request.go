package request_models

// CreateMinigameRequest records a play session. Points earned are computed
// server-side from score and difficulty, never caller-supplied.
type CreateMinigameRequest struct {
	GameType   string `json:"game_type" binding:"required,oneof=memory logic math pattern"`
	Score      int64  `json:"score" binding:"omitempty,gte=0"`
	TimeSpent  int64  `json:"time_spent" binding:"omitempty,gte=0"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Completed  bool   `json:"completed"`
}
