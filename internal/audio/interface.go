package audio

import (
	"context"
	"fmt"
)

// Payload is a size-measured audio file produced by transcoding.
type Payload struct {
	Path        string
	BitrateKbps int
	SizeBytes   int64
}

// Normalizer transcodes media into a transcription-ready audio payload.
type Normalizer interface {
	// Extract transcodes to compressed 16kHz mono audio at the given bitrate.
	Extract(ctx context.Context, videoPath string, bitrateKbps int) (string, error)
	// ExtractUnderLimit applies the two-attempt size policy: default bitrate,
	// then one retry at the fallback bitrate, then a permanent failure.
	ExtractUnderLimit(ctx context.Context, videoPath string, limitBytes int64) (Payload, error)
}

// TranscodeError reports a nonzero exit from the transcoding tool.
type TranscodeError struct {
	VideoPath string
	Err       error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode %s: %v", e.VideoPath, e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}

// SizeLimitError reports a payload still over the upload ceiling after the
// one allowed recompression.
type SizeLimitError struct {
	SizeBytes  int64
	LimitBytes int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("audio payload is %d bytes, over the %d byte upload ceiling even at the lowest bitrate; shorten the clip",
		e.SizeBytes, e.LimitBytes)
}
