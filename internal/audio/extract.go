package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract transcodes the video's audio track to compressed mono audio.
// The output name embeds the bitrate so a retry produces a distinct file.
func (n *implNormalizer) Extract(ctx context.Context, videoPath string, bitrateKbps int) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) +
		fmt.Sprintf("_%dk.mp3", bitrateKbps)

	n.logger.Info(ctx, "Extracting audio at %d kbps: %s", bitrateKbps, videoPath)

	// FFmpeg arguments for audio extraction
	// -vn: No video (audio only)
	// -ar 16000: Sample rate 16kHz (speech is fully represented)
	// -ac 1: Mono channel
	// -b:a: Target bitrate, the size lever for the upload ceiling
	// -y: Overwrite output file if exists
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", n.cfg.AudioCodec,
		"-b:a", fmt.Sprintf("%dk", bitrateKbps),
		"-y",
		audioPath,
	}

	if _, err := n.executor.Execute(ctx, n.cfg.BinaryPath, args...); err != nil {
		return "", &TranscodeError{VideoPath: videoPath, Err: err}
	}

	n.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

// ExtractUnderLimit encodes at the default bitrate and, if the result is over
// limitBytes, re-encodes exactly once at the fallback bitrate. Two attempts,
// never more: bounded latency beats an optimal bitrate search here.
func (n *implNormalizer) ExtractUnderLimit(ctx context.Context, videoPath string, limitBytes int64) (Payload, error) {
	payload, err := n.attempt(ctx, videoPath, n.cfg.DefaultBitrateKbps)
	if err != nil {
		return Payload{}, err
	}
	if payload.SizeBytes <= limitBytes {
		return payload, nil
	}

	n.logger.Warn(ctx, "Audio payload %d bytes over %d byte ceiling, re-encoding at %d kbps",
		payload.SizeBytes, limitBytes, n.cfg.FallbackBitrateKbps)

	payload, err = n.attempt(ctx, videoPath, n.cfg.FallbackBitrateKbps)
	if err != nil {
		return Payload{}, err
	}
	if payload.SizeBytes <= limitBytes {
		return payload, nil
	}

	return Payload{}, &SizeLimitError{SizeBytes: payload.SizeBytes, LimitBytes: limitBytes}
}

func (n *implNormalizer) attempt(ctx context.Context, videoPath string, bitrateKbps int) (Payload, error) {
	path, err := n.Extract(ctx, videoPath, bitrateKbps)
	if err != nil {
		return Payload{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Payload{}, fmt.Errorf("measure audio payload: %w", err)
	}

	return Payload{Path: path, BitrateKbps: bitrateKbps, SizeBytes: info.Size()}, nil
}
