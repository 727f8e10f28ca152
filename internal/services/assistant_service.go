package services

import (
	"context"
	"log"

	"lifesync/internal/models/request_models"
	"lifesync/internal/models/response_models"
	"lifesync/pkg/utils"
)

// AssistantClient abstracts the chat-completion provider; pkg/utils ships an
// OpenAI and a Gemini implementation.
type AssistantClient interface {
	ProviderName() string
	Chat(ctx context.Context, system string, history []request_models.ChatMessage, message string) (string, error)
}

const assistantSystemPrompt = "You are the LifeSync Pro assistant. You help users " +
	"plan goals across finance, health, productivity and learning, explain the " +
	"rewards system, and answer questions about their dashboard. Keep answers short " +
	"and practical. Never give medical or financial advice beyond general guidance."

type AssistantService interface {
	Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type assistantService struct {
	client AssistantClient
}

func NewAssistantService(client AssistantClient) AssistantService {
	return &assistantService{client: client}
}

func (a *assistantService) Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	reply, err := a.client.Chat(ctx, assistantSystemPrompt, request.History, request.Message)
	if err != nil {
		log.Printf("assistant provider %s: %v", a.client.ProviderName(), err)
		return nil, utils.ErrAssistantUnavailable
	}

	return &response_models.ChatResponse{
		Reply:    reply,
		Provider: a.client.ProviderName(),
	}, nil
}
