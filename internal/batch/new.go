package batch

import (
	"vidscribe/internal/logger"
	"vidscribe/internal/processor"
)

type implScheduler struct {
	processor processor.Processor
	logger    logger.Logger
}

// New creates a Scheduler that runs the given pipeline per candidate.
func New(proc processor.Processor, log logger.Logger) Scheduler {
	return &implScheduler{
		processor: proc,
		logger:    log,
	}
}
