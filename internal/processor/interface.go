package processor

import (
	"context"

	"vidscribe/internal/media"
)

// Request describes one media-to-text run.
type Request struct {
	Source     media.Source
	OutputPath string
	Continue   bool
	Title      string // optional override for the derived title
}

// Processor defines the interface for running the media-to-text pipeline
type Processor interface {
	Process(ctx context.Context, req Request) error
}
