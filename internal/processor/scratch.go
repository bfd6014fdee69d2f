package processor

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// scratchDir derives a unique per-run directory: slug of the output name
// plus a timestamp, so successive invocations never share scratch space.
func (p *implProcessor) scratchDir(req Request) string {
	base := strings.TrimSuffix(filepath.Base(req.OutputPath), filepath.Ext(req.OutputPath))
	name := slugify(base) + "-" + time.Now().Format("20060102-150405")
	return filepath.Join(p.cfg.Paths.Scratch, name)
}

func slugify(s string) string {
	s = slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "run"
	}
	return s
}

// cleanupScratch removes intermediate files after a committed run. Failed
// runs never reach this; their scratch directory stays for diagnostics.
func (p *implProcessor) cleanupScratch(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to clean up scratch dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up scratch dir: %s", dir)
	}
}
