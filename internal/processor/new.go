package processor

import (
	"vidscribe/internal/audio"
	"vidscribe/internal/config"
	"vidscribe/internal/logger"
	"vidscribe/internal/media"
	"vidscribe/internal/summarizer"
	"vidscribe/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	acquirer    media.Acquirer
	normalizer  audio.Normalizer
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a Processor instance wiring the pipeline stages together
func New(cfg *config.Config, acq media.Acquirer, norm audio.Normalizer,
	tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		acquirer:    acq,
		normalizer:  norm,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
}
