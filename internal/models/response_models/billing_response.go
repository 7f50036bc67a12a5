package response_models

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	Credits     int64  `json:"credits"`
}

type SettlementResponse struct {
	PlanCode       string `json:"plan_code"`
	CreditsGranted int64  `json:"credits_granted"`
}
