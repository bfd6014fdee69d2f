package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidscribe/internal/logger"
)

// fakeExecutor simulates downloader invocations.
type fakeExecutor struct {
	run func(ctx context.Context, name string, args ...string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if f.run == nil {
		return "", nil
	}
	return f.run(ctx, name, args...)
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    Kind
	}{
		{"https url", "https://example.com/watch?v=abc", Remote},
		{"http url", "http://example.com/clip", Remote},
		{"relative path", "videos/talk.mp4", Local},
		{"absolute path", "/data/talk.mp4", Local},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSource(tt.locator)
			if got.Kind != tt.want {
				t.Errorf("ParseSource(%q).Kind = %v, want %v", tt.locator, got.Kind, tt.want)
			}
		})
	}
}

func TestAcquireLocal(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	videoPath := filepath.Join(root, "team talk.mkv")
	mustWriteFile(t, videoPath, "media bytes")

	scratch := filepath.Join(root, "scratch")
	acq := New("yt-dlp", &fakeExecutor{}, logger.New("error"))

	item, err := acq.Acquire(ctx, Source{Locator: videoPath, Kind: Local}, scratch)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if filepath.Ext(item.Path) != ".mkv" {
		t.Errorf("copy should preserve extension, got %s", item.Path)
	}
	if item.Title != "team talk" {
		t.Errorf("Title = %q, want %q", item.Title, "team talk")
	}

	data, err := os.ReadFile(item.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "media bytes" {
		t.Errorf("copied content = %q, want original bytes", data)
	}
}

func TestAcquireLocalMissing(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "scratch")
	acq := New("yt-dlp", &fakeExecutor{}, logger.New("error"))

	_, err := acq.Acquire(ctx, Source{Locator: "/does/not/exist.mp4", Kind: Local}, scratch)

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("Acquire() error = %v, want *AcquisitionError", err)
	}
}

func TestAcquireRemote(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "scratch")

	exec := &fakeExecutor{
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			if name != "yt-dlp" {
				return "", fmt.Errorf("unexpected binary %s", name)
			}
			if args[0] == "--no-playlist" && args[1] == "-o" {
				// Download call: the tool chooses the extension.
				mustWriteFile(t, filepath.Join(scratch, "media.webm"), "downloaded")
				return "", nil
			}
			// Title call.
			return "How To Ship\n", nil
		},
	}

	acq := New("yt-dlp", exec, logger.New("error"))
	item, err := acq.Acquire(ctx, Source{Locator: "https://example.com/v", Kind: Remote}, scratch)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if filepath.Base(item.Path) != "media.webm" {
		t.Errorf("Path = %s, want media.webm", item.Path)
	}
	if item.Title != "How To Ship" {
		t.Errorf("Title = %q, want %q", item.Title, "How To Ship")
	}
}

func TestAcquireRemoteAmbiguous(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "scratch")

	exec := &fakeExecutor{
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			if args[0] == "--no-playlist" && args[1] == "-o" {
				mustWriteFile(t, filepath.Join(scratch, "media.mp4"), "a")
				mustWriteFile(t, filepath.Join(scratch, "media.webm"), "b")
			}
			return "", nil
		},
	}

	acq := New("yt-dlp", exec, logger.New("error"))
	_, err := acq.Acquire(ctx, Source{Locator: "https://example.com/v", Kind: Remote}, scratch)

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("Acquire() error = %v, want *AcquisitionError for ambiguous match", err)
	}
}

func TestAcquireRemoteNoFile(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "scratch")

	acq := New("yt-dlp", &fakeExecutor{}, logger.New("error"))
	_, err := acq.Acquire(ctx, Source{Locator: "https://example.com/v", Kind: Remote}, scratch)

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("Acquire() error = %v, want *AcquisitionError for missing download", err)
	}
}

func TestAcquireRemoteTitleFallback(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "scratch")

	exec := &fakeExecutor{
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			if args[0] == "--no-playlist" && args[1] == "-o" {
				mustWriteFile(t, filepath.Join(scratch, "media.mp4"), "downloaded")
				return "", nil
			}
			return "", fmt.Errorf("metadata lookup failed")
		},
	}

	acq := New("yt-dlp", exec, logger.New("error"))
	item, err := acq.Acquire(ctx, Source{Locator: "https://example.com/v", Kind: Remote}, scratch)
	if err != nil {
		t.Fatalf("Acquire() error = %v, title failure must not fail the run", err)
	}
	if !strings.HasPrefix(item.Title, "recording-") {
		t.Errorf("Title = %q, want timestamp fallback", item.Title)
	}
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.mp4", true},
		{"talk.MKV", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
	}

	for _, tt := range tests {
		if got := IsMediaFile(tt.path); got != tt.want {
			t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
