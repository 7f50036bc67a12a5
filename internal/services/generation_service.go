package services

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/google/uuid"

	"lumen/internal/models/db_models"
	"lumen/internal/models/request_models"
	"lumen/internal/models/response_models"
	"lumen/internal/repositories"
	"lumen/pkg/ai"
	"lumen/pkg/metrics"
	"lumen/pkg/utils"
)

// Credit costs per billed operation.
const (
	TextGenerationCost  int64 = 1
	ImageGenerationCost int64 = 2
)

type GenerationServiceInterface interface {
	GenerateImage(ctx context.Context, accountID uuid.UUID, request request_models.GenerateImageRequest) (*response_models.ImageResponse, error)
	SendTextMessage(ctx context.Context, accountID uuid.UUID, request request_models.TextMessageRequest) (*response_models.MessageResponse, error)
}

type GenerationService struct {
	accountRepo repositories.AccountRepository
	chatRepo    repositories.ChatRepository
	textClient  ai.TextClient
	imageClient ai.ImageClient
}

func NewGenerationService(
	accountRepo repositories.AccountRepository,
	chatRepo repositories.ChatRepository,
	textClient ai.TextClient,
	imageClient ai.ImageClient,
) GenerationServiceInterface {
	return &GenerationService{
		accountRepo: accountRepo,
		chatRepo:    chatRepo,
		textClient:  textClient,
		imageClient: imageClient,
	}
}

// GenerateImage renders the prompt through the external image service and
// debits ImageGenerationCost only after a successful result. The balance
// pre-check keeps insufficiently funded accounts from triggering billed
// upstream work at all.
func (g *GenerationService) GenerateImage(ctx context.Context, accountID uuid.UUID, request request_models.GenerateImageRequest) (*response_models.ImageResponse, error) {
	account, err := g.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.CreditBalance < ImageGenerationCost {
		metrics.GenerationsTotal.WithLabelValues("image", "rejected").Inc()
		return nil, utils.ErrInsufficientCredits
	}

	// Resolve the target chat before spending anything upstream.
	var chat *db_models.Chat
	if request.ChatID != "" {
		chatID, err := uuid.Parse(request.ChatID)
		if err != nil {
			return nil, utils.ErrChatNotFound
		}
		chat, err = g.chatRepo.FindByIDForAccount(ctx, chatID, accountID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if chat == nil {
			return nil, utils.ErrChatNotFound
		}
	}

	raw, err := g.imageClient.GenerateImage(ctx, request.Prompt)
	if err != nil {
		log.Printf("generate image: %v", err)
		metrics.GenerationsTotal.WithLabelValues("image", "error").Inc()
		return nil, utils.ErrGenerationFailed
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	if chat != nil {
		userMsg := &db_models.Message{ChatID: chat.ID, Role: "user", Content: request.Prompt}
		replyMsg := &db_models.Message{
			ChatID:      chat.ID,
			Role:        "assistant",
			Content:     dataURL,
			IsImage:     true,
			IsPublished: request.Publish,
		}
		if err := g.chatRepo.AppendMessage(ctx, userMsg); err != nil {
			log.Printf("generate image: appending user message: %v", err)
		}
		if err := g.chatRepo.AppendMessage(ctx, replyMsg); err != nil {
			log.Printf("generate image: appending reply: %v", err)
		}
	}

	debited, err := g.accountRepo.DebitCredits(ctx, accountID, ImageGenerationCost)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !debited {
		// A concurrent request won the race for the last credits.
		metrics.GenerationsTotal.WithLabelValues("image", "rejected").Inc()
		return nil, utils.ErrInsufficientCredits
	}

	metrics.GenerationsTotal.WithLabelValues("image", "ok").Inc()

	return &response_models.ImageResponse{
		Image:            dataURL,
		RemainingCredits: account.CreditBalance - ImageGenerationCost,
	}, nil
}

// SendTextMessage answers a prompt inside one of the account's chats and
// debits TextGenerationCost after the reply arrives.
func (g *GenerationService) SendTextMessage(ctx context.Context, accountID uuid.UUID, request request_models.TextMessageRequest) (*response_models.MessageResponse, error) {
	account, err := g.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.CreditBalance < TextGenerationCost {
		metrics.GenerationsTotal.WithLabelValues("text", "rejected").Inc()
		return nil, utils.ErrInsufficientCredits
	}

	chatID, err := uuid.Parse(request.ChatID)
	if err != nil {
		return nil, utils.ErrChatNotFound
	}
	chat, err := g.chatRepo.FindByIDForAccount(ctx, chatID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if chat == nil {
		return nil, utils.ErrChatNotFound
	}

	reply, err := g.textClient.GenerateReply(ctx, request.Prompt)
	if err != nil {
		log.Printf("text generation: %v", err)
		metrics.GenerationsTotal.WithLabelValues("text", "error").Inc()
		return nil, utils.ErrGenerationFailed
	}

	userMsg := &db_models.Message{ChatID: chat.ID, Role: "user", Content: request.Prompt}
	replyMsg := &db_models.Message{ChatID: chat.ID, Role: "assistant", Content: reply}
	if err := g.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		log.Printf("text generation: appending user message: %v", err)
	}
	if err := g.chatRepo.AppendMessage(ctx, replyMsg); err != nil {
		log.Printf("text generation: appending reply: %v", err)
	}

	debited, err := g.accountRepo.DebitCredits(ctx, accountID, TextGenerationCost)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !debited {
		metrics.GenerationsTotal.WithLabelValues("text", "rejected").Inc()
		return nil, utils.ErrInsufficientCredits
	}

	metrics.GenerationsTotal.WithLabelValues("text", "ok").Inc()

	return &response_models.MessageResponse{
		Reply:            reply,
		RemainingCredits: account.CreditBalance - TextGenerationCost,
	}, nil
}
