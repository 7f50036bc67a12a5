package generation_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"lumen/internal/api/controllers"
	"lumen/internal/config"
	"lumen/internal/repositories"
	"lumen/internal/services"
	"lumen/pkg/ai"
)

var Module = fx.Provide(
	provideTextClient,
	provideImageClient,
	provideGenerationService,
	provideGenerationController,
)

func provideTextClient(cfg *config.Config) ai.TextClient {
	if cfg.TextProvider == "gemini" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.TextModel)
		if err != nil {
			log.Fatalf("Gemini client init: %v", err)
		}
		return client
	}
	return ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.TextModel)
}

func provideImageClient(cfg *config.Config) ai.ImageClient {
	return ai.NewClipdropClient(cfg.ClipdropKey)
}

func provideGenerationService(
	accountRepo repositories.AccountRepository,
	chatRepo repositories.ChatRepository,
	textClient ai.TextClient,
	imageClient ai.ImageClient,
) services.GenerationServiceInterface {
	return services.NewGenerationService(accountRepo, chatRepo, textClient, imageClient)
}

func provideGenerationController(generationService services.GenerationServiceInterface) *controllers.GenerationController {
	return controllers.NewGenerationController(generationService)
}
