package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesync/internal/models/request_models"
	"lifesync/pkg/utils"
)

type fakeAssistantClient struct {
	reply string
	err   error

	lastSystem  string
	lastHistory []request_models.ChatMessage
	lastMessage string
}

func (f *fakeAssistantClient) ProviderName() string { return "fake" }

func (f *fakeAssistantClient) Chat(ctx context.Context, system string, history []request_models.ChatMessage, message string) (string, error) {
	f.lastSystem = system
	f.lastHistory = history
	f.lastMessage = message
	return f.reply, f.err
}

func TestAssistantServiceChat(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the message with the system prompt and history", func(t *testing.T) {
		client := &fakeAssistantClient{reply: "Set a weekly target."}
		svc := NewAssistantService(client)

		resp, err := svc.Chat(ctx, request_models.ChatRequest{
			Message: "How should I pace my savings goal?",
			History: []request_models.ChatMessage{
				{Role: "user", Content: "Hi"},
				{Role: "assistant", Content: "Hello!"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Set a weekly target.", resp.Reply)
		assert.Equal(t, "fake", resp.Provider)

		assert.NotEmpty(t, client.lastSystem)
		assert.Len(t, client.lastHistory, 2)
		assert.Equal(t, "How should I pace my savings goal?", client.lastMessage)
	})

	t.Run("provider failure maps to unavailable", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistantClient{err: errors.New("rate limited")})

		_, err := svc.Chat(ctx, request_models.ChatRequest{Message: "Hello"})
		assert.ErrorIs(t, err, utils.ErrAssistantUnavailable)
	})

	t.Run("empty message is a validation error", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistantClient{})

		_, err := svc.Chat(ctx, request_models.ChatRequest{})
		require.Error(t, err)

		var verr *utils.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("bad history role is a validation error", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistantClient{})

		_, err := svc.Chat(ctx, request_models.ChatRequest{
			Message: "Hello",
			History: []request_models.ChatMessage{{Role: "system", Content: "x"}},
		})
		assert.Error(t, err)
	})
}
