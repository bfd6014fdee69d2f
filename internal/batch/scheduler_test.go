package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"vidscribe/internal/logger"
	"vidscribe/internal/processor"
)

// fakeProcessor records processed paths and can fail selected ones.
type fakeProcessor struct {
	processed []processor.Request
	failOn    map[string]bool
}

func (f *fakeProcessor) Process(ctx context.Context, req processor.Request) error {
	f.processed = append(f.processed, req)
	if f.failOn[filepath.Base(req.Source.Locator)] {
		return fmt.Errorf("stage failure")
	}
	return nil
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunSkipsDoneAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	mustWriteFile(t, filepath.Join(dir, "a.mp4"))
	mustWriteFile(t, filepath.Join(dir, "b.mp4"))
	mustWriteFile(t, filepath.Join(dir, "c.mp4"))
	mustWriteFile(t, filepath.Join(dir, "b.md")) // b is already done
	mustWriteFile(t, filepath.Join(dir, "notes.txt"))

	proc := &fakeProcessor{}
	sched := New(proc, logger.New("error"))

	report, err := sched.Run(ctx, dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(proc.processed) != 2 {
		t.Fatalf("processed = %d items, want 2", len(proc.processed))
	}
	if got := filepath.Base(proc.processed[0].Source.Locator); got != "a.mp4" {
		t.Errorf("first item = %s, want a.mp4", got)
	}
	if got := filepath.Base(proc.processed[1].Source.Locator); got != "c.mp4" {
		t.Errorf("second item = %s, want c.mp4", got)
	}
	if report.Attempted != 2 || report.Succeeded != 2 {
		t.Errorf("report = %+v, want 2/2", report)
	}
}

func TestRunContinuesPastFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	mustWriteFile(t, filepath.Join(dir, "a.mp4"))
	mustWriteFile(t, filepath.Join(dir, "b.mp4"))
	mustWriteFile(t, filepath.Join(dir, "c.mp4"))

	proc := &fakeProcessor{failOn: map[string]bool{"b.mp4": true}}
	sched := New(proc, logger.New("error"))

	report, err := sched.Run(ctx, dir)
	if err != nil {
		t.Fatalf("Run() error = %v, per-item failures must not abort the batch", err)
	}

	if len(proc.processed) != 3 {
		t.Errorf("processed = %d items, want all 3", len(proc.processed))
	}
	if report.Attempted != 3 || report.Succeeded != 2 {
		t.Errorf("report = %+v, want attempted 3 succeeded 2", report)
	}
}

func TestRunOutputTargetsSibling(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "talk.mkv"))

	proc := &fakeProcessor{}
	sched := New(proc, logger.New("error"))

	if _, err := sched.Run(ctx, dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(proc.processed) != 1 {
		t.Fatalf("processed = %d items, want 1", len(proc.processed))
	}
	want := filepath.Join(dir, "talk.md")
	if proc.processed[0].OutputPath != want {
		t.Errorf("OutputPath = %s, want %s", proc.processed[0].OutputPath, want)
	}
	if proc.processed[0].Continue {
		t.Error("batch items must use fresh mode, not continue mode")
	}
}

func TestProcessFileSkipsDone(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mediaPath := filepath.Join(dir, "talk.mp4")
	mustWriteFile(t, mediaPath)
	mustWriteFile(t, filepath.Join(dir, "talk.md"))

	proc := &fakeProcessor{}
	sched := New(proc, logger.New("error"))

	if err := sched.ProcessFile(ctx, mediaPath); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if len(proc.processed) != 0 {
		t.Errorf("processed = %d items, want skip", len(proc.processed))
	}
}

func TestRunMissingDir(t *testing.T) {
	ctx := context.Background()
	sched := New(&fakeProcessor{}, logger.New("error"))

	if _, err := sched.Run(ctx, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Run() should fail for a missing directory")
	}
}
