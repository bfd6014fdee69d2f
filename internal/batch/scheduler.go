package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vidscribe/internal/media"
	"vidscribe/internal/processor"
)

// Run processes every media file in dir in lexicographic order. Items whose
// sibling output artifact already exists are skipped, not failed; a failing
// item is logged and the batch moves on to the next candidate.
func (s *implScheduler) Run(ctx context.Context, dir string) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("read batch directory: %w", err)
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if media.IsMediaFile(e.Name()) {
			candidates = append(candidates, e.Name())
		}
	}
	sort.Strings(candidates)

	s.logger.Info(ctx, "Found %d media files in %s", len(candidates), dir)

	var report Report
	for _, name := range candidates {
		path := filepath.Join(dir, name)

		if outputExists(path) {
			s.logger.Info(ctx, "Skipping %s: output already exists", name)
			continue
		}

		report.Attempted++
		if err := s.ProcessFile(ctx, path); err != nil {
			s.logger.Error(ctx, "Failed to process %s: %v", name, err)
			continue
		}
		report.Succeeded++
	}

	s.logger.Info(ctx, "Batch complete: %d/%d succeeded", report.Succeeded, report.Attempted)
	return report, nil
}

// ProcessFile runs the pipeline for one candidate, writing the sibling
// output artifact. Already-done items are a logged no-op.
func (s *implScheduler) ProcessFile(ctx context.Context, path string) error {
	outputPath := siblingOutputPath(path)
	if outputExists(path) {
		s.logger.Info(ctx, "Skipping %s: output already exists", filepath.Base(path))
		return nil
	}

	req := processor.Request{
		Source:     media.Source{Locator: path, Kind: media.Local},
		OutputPath: outputPath,
	}
	return s.processor.Process(ctx, req)
}

// siblingOutputPath is the expected artifact next to the media file.
func siblingOutputPath(mediaPath string) string {
	return strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + ".md"
}

func outputExists(mediaPath string) bool {
	_, err := os.Stat(siblingOutputPath(mediaPath))
	return err == nil
}
