package summarizer

import (
	"context"
	"fmt"
)

// Summarizer produces a localized bullet-point digest of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, text, language string) (string, error)
}

// SummaryError reports a failed or unusable summarization call. Partial
// results are discarded; the caller never sees a half-merged digest.
type SummaryError struct {
	Stage string // "single", "chunk", or "merge"
	Err   error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("summarize (%s): %v", e.Stage, e.Err)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}
