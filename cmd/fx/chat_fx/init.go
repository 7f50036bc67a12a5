package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lumen/internal/api/controllers"
	"lumen/internal/repositories"
	"lumen/internal/services"
)

var Module = fx.Provide(
	provideChatRepo, provideChatService, provideChatController,
)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository, accountRepo repositories.AccountRepository) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, accountRepo)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
