package transcriber

import (
	"context"
	"fmt"
)

// Transcriber converts an audio payload into plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// EmptyTranscriptError reports a service response with no usable text.
// This is a content problem with the recording, not a transient failure.
type EmptyTranscriptError struct {
	AudioPath string
}

func (e *EmptyTranscriptError) Error() string {
	return fmt.Sprintf("transcription of %s returned no text", e.AudioPath)
}
