package transcriber

import (
	"time"

	"vidscribe/internal/gemini"
	"vidscribe/internal/logger"
)

type implTranscriber struct {
	client gemini.Client
	model  string
	logger logger.Logger
}

// New creates a Transcriber that sends audio to the Gemini API.
func New(client gemini.Client, model string, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: client,
		model:  model,
		logger: log,
	}
}

type implRetrying struct {
	inner     Transcriber
	attempts  int
	baseDelay time.Duration
	logger    logger.Logger
	sleep     func(time.Duration)
}

// NewRetrying wraps a Transcriber with bounded retries for connectivity-class
// failures only, sleeping attempt x baseDelay between tries.
func NewRetrying(inner Transcriber, attempts int, baseDelay time.Duration, log logger.Logger) Transcriber {
	return &implRetrying{
		inner:     inner,
		attempts:  attempts,
		baseDelay: baseDelay,
		logger:    log,
		sleep:     time.Sleep,
	}
}
