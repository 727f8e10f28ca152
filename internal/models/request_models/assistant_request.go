package request_models

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required,max=4000"`
	History []ChatMessage `json:"history" binding:"omitempty,max=50,dive"`
}
