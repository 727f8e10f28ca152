package utils

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"lifesync/internal/models/request_models"
)

// OpenAIAssistant backs the assistant with OpenAI chat completions.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistant(apiKey, model string) *OpenAIAssistant {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistant{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAssistant) ProviderName() string { return "openai" }

func (c *OpenAIAssistant) Chat(ctx context.Context, system string, history []request_models.ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, h := range history {
		role := openai.ChatMessageRoleUser
		if h.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: h.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
