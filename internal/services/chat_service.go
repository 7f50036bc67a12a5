package services

import (
	"context"

	"github.com/google/uuid"

	"lumen/internal/models/db_models"
	"lumen/internal/models/response_models"
	"lumen/internal/repositories"
	"lumen/pkg/utils"
)

type ChatServiceInterface interface {
	CreateChat(ctx context.Context, accountID uuid.UUID) (*response_models.ChatResponse, error)
	ListChats(ctx context.Context, accountID uuid.UUID) ([]response_models.ChatResponse, error)
	DeleteChat(ctx context.Context, accountID, chatID uuid.UUID) error
	PublishedImages(ctx context.Context) ([]repositories.PublishedImage, error)
}

type ChatService struct {
	chatRepo    repositories.ChatRepository
	accountRepo repositories.AccountRepository
}

func NewChatService(chatRepo repositories.ChatRepository, accountRepo repositories.AccountRepository) ChatServiceInterface {
	return &ChatService{
		chatRepo:    chatRepo,
		accountRepo: accountRepo,
	}
}

func (s *ChatService) CreateChat(ctx context.Context, accountID uuid.UUID) (*response_models.ChatResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	chat := &db_models.Chat{
		AccountID:  accountID,
		Title:      "New Chat",
		AuthorName: account.Name,
	}
	if err := s.chatRepo.Insert(ctx, chat); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toChatResponse(chat), nil
}

func (s *ChatService) ListChats(ctx context.Context, accountID uuid.UUID) ([]response_models.ChatResponse, error) {
	chats, err := s.chatRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ChatResponse, 0, len(chats))
	for i := range chats {
		out = append(out, *toChatResponse(&chats[i]))
	}
	return out, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, accountID, chatID uuid.UUID) error {
	deleted, err := s.chatRepo.Delete(ctx, chatID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrChatNotFound
	}
	return nil
}

func (s *ChatService) PublishedImages(ctx context.Context) ([]repositories.PublishedImage, error) {
	images, err := s.chatRepo.PublishedImages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return images, nil
}

func toChatResponse(chat *db_models.Chat) *response_models.ChatResponse {
	messages := make([]response_models.ChatMessage, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		messages = append(messages, response_models.ChatMessage{
			Role:        m.Role,
			Content:     m.Content,
			IsImage:     m.IsImage,
			IsPublished: m.IsPublished,
			Timestamp:   m.CreatedAt,
		})
	}
	return &response_models.ChatResponse{
		ID:        chat.ID.String(),
		Title:     chat.Title,
		UpdatedAt: chat.UpdatedAt,
		Messages:  messages,
	}
}
