package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a TextClient on the native Gemini SDK.
func NewGeminiClient(ctx context.Context, apiKey, model string) (TextClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
