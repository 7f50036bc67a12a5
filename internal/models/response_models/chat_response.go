package response_models

type ChatMessage struct {
	Role        string `json:"role"`
	Content     string `json:"content"`
	IsImage     bool   `json:"is_image"`
	IsPublished bool   `json:"is_published"`
	Timestamp   int64  `json:"timestamp"`
}

type ChatResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	UpdatedAt int64         `json:"updated_at"`
	Messages  []ChatMessage `json:"messages"`
}
