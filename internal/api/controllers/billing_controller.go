package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumen/internal/models/request_models"
	"lumen/internal/services"
	"lumen/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{billingService: billingService}
}

// ListPlans godoc
// @Summary List purchasable credit plans
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /billing/plans [get]
func (b *BillingController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"plans": b.billingService.ListPlans()}, "Plans fetched successfully")
}

// CreateCheckout godoc
// @Summary Create a checkout session for a credit plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/checkout [post]
func (b *BillingController) CreateCheckout(c *gin.Context) {
	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	resp, err := b.billingService.CreateCheckoutForPlan(c.Request.Context(), accountID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout session created successfully")
}

// VerifyCheckout godoc
// @Summary Verify a completed checkout and apply the credit grant
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.VerifyCheckoutRequest true "Verification payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/verify [post]
func (b *BillingController) VerifyCheckout(c *gin.Context) {
	var req request_models.VerifyCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := b.billingService.VerifyCheckout(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Credits added successfully")
}

// HandleWebhook consumes gateway events. The raw body is required for
// signature verification, so this route must never sit behind JSON
// body-parsing middleware.
func (b *BillingController) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := b.billingService.ProcessWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
