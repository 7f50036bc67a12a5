package request_models

type CreateCheckoutRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
}

type VerifyCheckoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
