package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerateText sends a plain text prompt and returns the response text.
func (c *implClient) GenerateText(ctx context.Context, model, prompt string, opts Options) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	return c.generate(ctx, model, parts, opts)
}

// GenerateWithAudio sends a prompt together with an inline audio payload.
func (c *implClient) GenerateWithAudio(ctx context.Context, model, prompt string, audio []byte, mimeType string, opts Options) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(audio, mimeType),
	}
	return c.generate(ctx, model, parts, opts)
}

func (c *implClient) generate(ctx context.Context, model string, parts []*genai.Part, opts Options) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(opts.Temperature),
	}
	if opts.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.System, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
