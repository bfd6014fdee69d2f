package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Render produces the fixed Markdown layout for one block: optional title
// heading, then the two labelled sections in the configured order. Section
// labels are byte-exact so successive appends stay diffable.
func Render(block Block, opts Options) string {
	var sb strings.Builder

	if block.Title != "" {
		sb.WriteString("# " + block.Title + "\n\n")
	}

	transcript := "## Transcript\n\n" + strings.TrimSpace(block.Transcript) + "\n"
	summary := "## Summary\n\n" + strings.TrimSpace(block.Summary) + "\n"

	if opts.SectionOrder == SummaryFirst {
		sb.WriteString(summary + "\n" + transcript)
	} else {
		sb.WriteString(transcript + "\n" + summary)
	}

	return sb.String()
}

// Write commits the block to destPath. Fresh mode fails if the destination
// already exists; continue mode appends a separator-delimited block. Prior
// content is never rewritten, the artifact only grows.
func Write(block Block, destPath string, continueMode bool, opts Options) error {
	rendered := Render(block, opts)

	if !continueMode {
		return writeFresh(destPath, rendered)
	}

	existing, err := os.ReadFile(destPath)
	if errors.Is(err, fs.ErrNotExist) {
		return writeFresh(destPath, rendered)
	}
	if err != nil {
		return fmt.Errorf("read output file: %w", err)
	}
	if len(existing) == 0 {
		return appendTo(destPath, rendered)
	}

	var sb strings.Builder
	if existing[len(existing)-1] != '\n' {
		sb.WriteByte('\n')
	}
	sb.WriteString(opts.Separator + "\n\n")
	sb.WriteString(rendered)

	return appendTo(destPath, sb.String())
}

// writeFresh creates the destination, failing if it already exists. The
// O_EXCL flag keeps the existence check and the create atomic.
func writeFresh(destPath, content string) error {
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ExistsError{Path: destPath}
		}
		return fmt.Errorf("create output file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	return f.Close()
}

func appendTo(destPath, content string) error {
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open output file for append: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("append to output file: %w", err)
	}
	return f.Close()
}
