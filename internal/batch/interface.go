package batch

import "context"

// Report counts the outcome of one batch run.
type Report struct {
	Attempted int
	Succeeded int
}

// Scheduler discovers candidate media files and drives the pipeline per item.
type Scheduler interface {
	// Run processes every candidate in dir, skipping already-done items.
	Run(ctx context.Context, dir string) (Report, error)
	// ProcessFile runs the pipeline for a single candidate with the same
	// skip-if-done semantics. Watch mode feeds files through this.
	ProcessFile(ctx context.Context, path string) error
}
