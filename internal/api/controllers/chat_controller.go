package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lumen/internal/services"
	"lumen/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// CreateChat godoc
// @Summary Create an empty chat
// @Tags Chats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (ch *ChatController) CreateChat(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	chat, err := ch.chatService.CreateChat(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chat, "Chat created")
}

// ListChats godoc
// @Summary List the account's chats, most recently active first
// @Tags Chats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [get]
func (ch *ChatController) ListChats(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	chats, err := ch.chatService.ListChats(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chats, "Chats fetched successfully")
}

// DeleteChat godoc
// @Summary Delete one of the account's chats
// @Tags Chats
// @Produce json
// @Param id path string true "Chat id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/{id} [delete]
func (ch *ChatController) DeleteChat(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid chat id")
		return
	}

	if err := ch.chatService.DeleteChat(c.Request.Context(), accountID, chatID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Chat deleted successfully")
}

// PublishedImages godoc
// @Summary Public gallery of published generated images
// @Tags Community
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /community/images [get]
func (ch *ChatController) PublishedImages(c *gin.Context) {
	images, err := ch.chatService.PublishedImages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"images": images}, "Images fetched successfully")
}
