package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumen/internal/models/request_models"
	"lumen/internal/services"
	"lumen/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{generationService: generationService}
}

// GenerateImage godoc
// @Summary Generate an image from a prompt
// @Description Costs 2 credits; the result is returned as a data URL
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.GenerateImageRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /image/generate [post]
func (g *GenerationController) GenerateImage(c *gin.Context) {
	var req request_models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	resp, err := g.generationService.GenerateImage(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Image generated successfully")
}

// TextMessage godoc
// @Summary Answer a prompt inside a chat
// @Description Costs 1 credit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.TextMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /message/text [post]
func (g *GenerationController) TextMessage(c *gin.Context) {
	var req request_models.TextMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	resp, err := g.generationService.SendTextMessage(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Reply generated successfully")
}
