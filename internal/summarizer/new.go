package summarizer

import (
	"vidscribe/internal/gemini"
	"vidscribe/internal/logger"
)

type implSummarizer struct {
	client         gemini.Client
	model          string
	chunkThreshold int
	logger         logger.Logger
}

// New creates a Summarizer that chunks transcripts over chunkThreshold
// characters and merges the partial summaries in a final call.
func New(client gemini.Client, model string, chunkThreshold int, log logger.Logger) Summarizer {
	return &implSummarizer{
		client:         client,
		model:          model,
		chunkThreshold: chunkThreshold,
		logger:         log,
	}
}
