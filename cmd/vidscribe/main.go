package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vidscribe/internal/audio"
	"vidscribe/internal/batch"
	"vidscribe/internal/config"
	"vidscribe/internal/gemini"
	"vidscribe/internal/logger"
	"vidscribe/internal/media"
	"vidscribe/internal/processor"
	"vidscribe/internal/summarizer"
	"vidscribe/internal/transcriber"
	"vidscribe/internal/watcher"
	"vidscribe/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	outputPath := flag.String("o", "transcript.md", "destination artifact path")
	continueMode := flag.Bool("continue", false, "append to an existing destination instead of failing")
	title := flag.String("title", "", "override the derived title")
	batchDir := flag.String("batch", "", "process every media file in this directory")
	watchMode := flag.Bool("watch", false, "keep watching the batch directory for new files")
	flag.Parse()

	ctx := context.Background()

	// A .env file is optional; the key may come from the shell environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	// The credential is checked once here and injected; no package reads
	// the environment on its own.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := gemini.New(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("init gemini client: %w", err)
	}

	// Determine the source up front; the retry policy depends on it.
	var source media.Source
	if *batchDir == "" {
		if flag.NArg() != 1 {
			return fmt.Errorf("usage: vidscribe [flags] <url-or-path>")
		}
		source = media.ParseSource(flag.Arg(0))
	}

	exec := executor.New()
	acq := media.New(cfg.Downloader.BinaryPath, exec, log)
	norm := audio.New(cfg.FFmpeg, exec, log)
	sum := summarizer.New(client, cfg.Gemini.SummarizeModel, cfg.Limits.ChunkThresholdChars, log)

	// Local payloads can safely re-upload after a dropped connection;
	// batch items are always local files.
	tr := transcriber.New(client, cfg.Gemini.TranscribeModel, log)
	if *batchDir != "" || source.Kind == media.Local {
		tr = transcriber.NewRetrying(tr,
			cfg.Limits.RetryAttempts,
			time.Duration(cfg.Limits.RetryBaseDelaySecs)*time.Second,
			log)
	}

	proc := processor.New(cfg, acq, norm, tr, sum, log)

	if *batchDir != "" {
		return runBatch(ctx, proc, log, *batchDir, *watchMode)
	}

	req := processor.Request{
		Source:     source,
		OutputPath: *outputPath,
		Continue:   *continueMode,
		Title:      *title,
	}
	return proc.Process(ctx, req)
}

// runBatch drains the directory once and, in watch mode, keeps processing
// files as they land afterwards.
func runBatch(ctx context.Context, proc processor.Processor, log logger.Logger, dir string, watchMode bool) error {
	sched := batch.New(proc, log)

	report, err := sched.Run(ctx, dir)
	if err != nil {
		return err
	}

	if !watchMode {
		if report.Attempted > 0 && report.Succeeded == 0 {
			return fmt.Errorf("all %d attempted items failed", report.Attempted)
		}
		return nil
	}

	w, err := watcher.New(dir, sched.ProcessFile, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new media. Press Ctrl+C to stop", dir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		return nil
	case err := <-errChan:
		return err
	}
}
