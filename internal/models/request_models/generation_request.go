package request_models

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	// Optional chat to attach the result to; omitted in the plain
	// image-generator flow.
	ChatID  string `json:"chat_id" binding:"omitempty,uuid4"`
	Publish bool   `json:"publish"`
}

type TextMessageRequest struct {
	ChatID string `json:"chat_id" binding:"required,uuid4"`
	Prompt string `json:"prompt" binding:"required"`
}
