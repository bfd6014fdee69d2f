package processor

import (
	"context"
	"fmt"
	"time"

	"vidscribe/internal/output"
)

// Process runs the stages strictly in sequence: acquire, normalize under the
// upload ceiling, transcribe, summarize, commit. Nothing is written to the
// destination until every upstream stage has succeeded.
func (p *implProcessor) Process(ctx context.Context, req Request) error {
	startTime := time.Now()

	scratchDir := p.scratchDir(req)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run: %s -> %s", req.Source.Locator, req.OutputPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Acquire media into the scratch directory
	item, err := p.acquirer.Acquire(ctx, req.Source, scratchDir)
	if err != nil {
		return fmt.Errorf("acquire media: %w", err)
	}

	title := req.Title
	if title == "" {
		title = item.Title
	}

	// Step 2: Normalize audio under the service's upload ceiling
	payload, err := p.normalizer.ExtractUnderLimit(ctx, item.Path, p.cfg.Limits.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("normalize audio: %w", err)
	}

	// Step 3: Transcribe
	text, err := p.transcriber.Transcribe(ctx, payload.Path)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 4: Summarize in the configured language
	digest, err := p.summarizer.Summarize(ctx, text, p.cfg.Output.Language)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 5: Commit the block to the destination artifact
	block := output.Block{Title: title, Transcript: text, Summary: digest}
	opts := output.Options{
		SectionOrder: output.Order(p.cfg.Output.SectionOrder),
		Separator:    p.cfg.Output.Separator,
	}
	if err := output.Write(block, req.OutputPath, req.Continue, opts); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.cleanupScratch(ctx, scratchDir)

	p.logger.Info(ctx, "Run completed in %s: %s", time.Since(startTime), req.OutputPath)
	return nil
}
