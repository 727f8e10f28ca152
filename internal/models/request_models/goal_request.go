package request_models

type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Category     string  `json:"category" binding:"required,oneof=finance health productivity learning"`
	TargetDate   *int64  `json:"target_date" binding:"omitempty,gt=0"`
	RewardPoints int64   `json:"reward_points" binding:"omitempty,gte=0"`
}

type UpdateGoalRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	TargetDate  *int64  `json:"target_date" binding:"omitempty,gt=0"`
}
