package assistant_fx

import (
	"context"

	"go.uber.org/fx"

	"lifesync/internal/config"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

var Module = fx.Provide(
	provideAssistantClient, provideAssistantService)

func provideAssistantClient(cfg config.Config) (services.AssistantClient, error) {
	if cfg.AssistantProvider == "gemini" {
		return utils.NewGeminiAssistant(context.Background(), cfg.GeminiAPIKey, "")
	}
	return utils.NewOpenAIAssistant(cfg.OpenAIAPIKey, ""), nil
}

func provideAssistantService(client services.AssistantClient) services.AssistantService {
	return services.NewAssistantService(client)
}
