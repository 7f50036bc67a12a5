package response_models

type ImageResponse struct {
	Image            string `json:"image"` // data URL
	RemainingCredits int64  `json:"remaining_credits"`
}

type MessageResponse struct {
	Reply            string `json:"reply"`
	RemainingCredits int64  `json:"remaining_credits"`
}
