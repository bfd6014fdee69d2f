package media

import (
	"vidscribe/internal/logger"
	"vidscribe/pkg/executor"
)

type implAcquirer struct {
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Acquirer that downloads remote media with the given
// downloader binary (yt-dlp) and copies local files.
func New(binary string, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		binary:   binary,
		executor: exec,
		logger:   log,
	}
}
