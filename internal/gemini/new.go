package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type implClient struct {
	client *genai.Client
}

// New creates a Client backed by the hosted Gemini API. The API key is
// injected here; no package reads it from the environment itself.
func New(ctx context.Context, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implClient{client: client}, nil
}
