package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"
)

// Transcribe retries the wrapped transcriber on connectivity failures with
// linearly increasing backoff. Anything else surfaces immediately: a
// malformed payload will not fix itself on a second upload.
func (r *implRetrying) Transcribe(ctx context.Context, audioPath string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.attempts; attempt++ {
		text, err := r.inner.Transcribe(ctx, audioPath)
		if err == nil {
			return text, nil
		}

		if !isConnectivityError(err) {
			return "", fmt.Errorf("transcription failed, check the input format: %w", err)
		}

		lastErr = err
		if attempt < r.attempts {
			delay := time.Duration(attempt) * r.baseDelay
			r.logger.Warn(ctx, "Transcription attempt %d/%d failed (%v), retrying in %s",
				attempt, r.attempts, err, delay)
			r.sleep(delay)
		}
	}

	return "", fmt.Errorf("transcription failed after %d attempts: %w", r.attempts, lastErr)
}

// isConnectivityError reports whether err is a transient network failure:
// timeout, DNS resolution, or a dropped connection.
func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
