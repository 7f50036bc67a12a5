package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const clipdropEndpoint = "https://clipdrop-api.co/text-to-image/v1"

// ImageClient renders a prompt to PNG bytes.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type clipdropClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClipdropClient talks to the Clipdrop text-to-image REST API, which
// takes the prompt as a multipart form field and answers with raw PNG.
func NewClipdropClient(apiKey string) ImageClient {
	return &clipdropClient{
		apiKey:     apiKey,
		endpoint:   clipdropEndpoint,
		httpClient: http.DefaultClient,
	}
}

func (c *clipdropClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clipdrop request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clipdrop response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clipdrop status %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}
