package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind distinguishes how a source locator is resolved.
type Kind int

const (
	Remote Kind = iota
	Local
)

// Source is the validated user input: a media locator and how to fetch it.
type Source struct {
	Locator string
	Kind    Kind
}

// Item is an acquired media file inside a scratch directory.
type Item struct {
	Path  string
	Title string
}

// Acquirer obtains a local media file from a remote URL or a local path.
type Acquirer interface {
	Acquire(ctx context.Context, src Source, scratchDir string) (Item, error)
}

// AcquisitionError reports a failed download or copy.
type AcquisitionError struct {
	Locator string
	Err     error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Locator, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// ParseSource classifies a locator as a remote URL or a local path.
func ParseSource(locator string) Source {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return Source{Locator: locator, Kind: Remote}
	}
	return Source{Locator: locator, Kind: Local}
}

var supportedExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}

// IsMediaFile checks if the file has a supported video extension
func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}
