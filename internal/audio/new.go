package audio

import (
	"vidscribe/internal/config"
	"vidscribe/internal/logger"
	"vidscribe/pkg/executor"
)

type implNormalizer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer backed by the configured ffmpeg binary.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
