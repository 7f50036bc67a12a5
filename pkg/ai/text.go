package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// TextClient produces a single assistant reply for a prompt.
type TextClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a TextClient over any OpenAI-compatible endpoint.
// baseURL may point at Gemini's compatibility layer; an empty baseURL uses
// the stock OpenAI API.
func NewOpenAIClient(apiKey, baseURL, model string) TextClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &openAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *openAIClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
