package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidscribe/internal/gemini"
)

const transcribePrompt = `Transcribe this recording verbatim. Return only the spoken words as plain text. No timestamps, no speaker labels, no commentary, no formatting.`

// Transcribe uploads the audio payload inline and returns the transcript.
// Temperature 0 keeps the decoding deterministic.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio payload: %w", err)
	}

	t.logger.Info(ctx, "Transcribing %s (%d bytes)", audioPath, len(data))

	text, err := t.client.GenerateWithAudio(ctx, t.model, transcribePrompt,
		data, mimeForExt(audioPath), gemini.Options{Temperature: 0})
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptyTranscriptError{AudioPath: audioPath}
	}

	t.logger.Info(ctx, "Transcription complete: %d characters", len(text))
	return text, nil
}

func mimeForExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/mp3"
	}
}
