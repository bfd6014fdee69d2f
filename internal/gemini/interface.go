package gemini

import "context"

// Options tune a single generation call.
type Options struct {
	Temperature float32
	System      string
}

// Client is the narrow surface of the Gemini API the pipeline uses.
type Client interface {
	GenerateText(ctx context.Context, model, prompt string, opts Options) (string, error)
	GenerateWithAudio(ctx context.Context, model, prompt string, audio []byte, mimeType string, opts Options) (string, error)
}
