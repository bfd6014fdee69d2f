package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// downloadBaseName is the fixed base the downloader writes to; the tool
// chooses the extension.
const downloadBaseName = "media"

// Acquire resolves a Source into a file inside scratchDir and derives a
// display title. Title derivation is best-effort and never fails the run.
func (a *implAcquirer) Acquire(ctx context.Context, src Source, scratchDir string) (Item, error) {
	if err := os.MkdirAll(scratchDir, 0755); err != nil {
		return Item{}, fmt.Errorf("create scratch dir: %w", err)
	}

	if src.Kind == Remote {
		return a.download(ctx, src, scratchDir)
	}
	return a.copyLocal(ctx, src, scratchDir)
}

func (a *implAcquirer) download(ctx context.Context, src Source, scratchDir string) (Item, error) {
	a.logger.Info(ctx, "Downloading media: %s", src.Locator)

	template := filepath.Join(scratchDir, downloadBaseName+".%(ext)s")
	args := []string{
		"--no-playlist",
		"-o", template,
		src.Locator,
	}

	if _, err := a.executor.Execute(ctx, a.binary, args...); err != nil {
		return Item{}, &AcquisitionError{Locator: src.Locator, Err: err}
	}

	matches, err := filepath.Glob(filepath.Join(scratchDir, downloadBaseName+".*"))
	if err != nil {
		return Item{}, &AcquisitionError{Locator: src.Locator, Err: err}
	}
	if len(matches) != 1 {
		return Item{}, &AcquisitionError{
			Locator: src.Locator,
			Err:     fmt.Errorf("expected one downloaded file, found %d", len(matches)),
		}
	}

	a.logger.Info(ctx, "Download complete: %s", matches[0])
	return Item{Path: matches[0], Title: a.remoteTitle(ctx, src.Locator)}, nil
}

func (a *implAcquirer) copyLocal(ctx context.Context, src Source, scratchDir string) (Item, error) {
	abs, err := filepath.Abs(src.Locator)
	if err != nil {
		return Item{}, &AcquisitionError{Locator: src.Locator, Err: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return Item{}, &AcquisitionError{Locator: src.Locator, Err: err}
	}

	dest := filepath.Join(scratchDir, downloadBaseName+filepath.Ext(abs))
	if err := copyFile(abs, dest); err != nil {
		return Item{}, &AcquisitionError{Locator: src.Locator, Err: err}
	}

	a.logger.Info(ctx, "Copied local media: %s -> %s", abs, dest)
	title := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	return Item{Path: dest, Title: title}, nil
}

// remoteTitle asks the downloader for the display title in metadata-only
// mode. Falls back to a timestamp title on any failure.
func (a *implAcquirer) remoteTitle(ctx context.Context, locator string) string {
	out, err := a.executor.Execute(ctx, a.binary,
		"--no-playlist", "--skip-download", "--print", "title", locator)
	if err != nil {
		a.logger.Warn(ctx, "Failed to fetch title for %s: %v", locator, err)
		return fallbackTitle()
	}

	title := strings.TrimSpace(out)
	if title == "" {
		return fallbackTitle()
	}
	return title
}

func fallbackTitle() string {
	return "recording-" + time.Now().Format("20060102-150405")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy contents: %w", err)
	}
	return out.Close()
}
