package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"vidscribe/internal/gemini"
)

const singlePrompt = `Extract the most important points from this transcript as a bullet list in %s.

Requirements:
- Every line must start with "- "
- No preamble, no postamble, no headings
- Keep domain terms as spoken

Transcript:
---
%s
---`

const chunkPrompt = `This is part %d of %d of a longer transcript. Summarize the most important points of this part as a bullet list in %s.

Requirements:
- Every line must start with "- "
- No preamble, no postamble, no headings

Transcript part:
---
%s
---`

const mergePrompt = `Below are partial bullet summaries of consecutive parts of one recording. Combine them into a single bullet list in %s.

Requirements:
- Deduplicate overlapping points
- Order the points logically
- Every line must start with "- "
- No preamble, no postamble, no headings

Partial summaries:
---
%s
---`

const systemInstruction = `You are a careful note taker. You respond only with Markdown bullet lines, nothing else.`

// summarizeTemperature allows minor stylistic variance while staying close
// to deterministic.
const summarizeTemperature = 0.2

// Summarize digests the transcript into bullet points in the target
// language. Short transcripts take a single call; long ones are chunked,
// summarized independently, and merged.
func (s *implSummarizer) Summarize(ctx context.Context, text, language string) (string, error) {
	opts := gemini.Options{Temperature: summarizeTemperature, System: systemInstruction}

	if len(text) <= s.chunkThreshold {
		s.logger.Info(ctx, "Summarizing transcript (%d chars, single call)", len(text))

		out, err := s.client.GenerateText(ctx, s.model,
			fmt.Sprintf(singlePrompt, language, text), opts)
		if err != nil {
			return "", &SummaryError{Stage: "single", Err: err}
		}
		return strings.TrimSpace(out), nil
	}

	chunks := chunkText(text, s.chunkThreshold)
	s.logger.Info(ctx, "Summarizing transcript (%d chars, %d chunks)", len(text), len(chunks))

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		// The part label is advisory context for the model; the merge call
		// does not depend on it.
		out, err := s.client.GenerateText(ctx, s.model,
			fmt.Sprintf(chunkPrompt, i+1, len(chunks), language, chunk), opts)
		if err != nil {
			return "", &SummaryError{Stage: "chunk", Err: err}
		}
		partials = append(partials, strings.TrimSpace(out))
	}

	merged, err := s.client.GenerateText(ctx, s.model,
		fmt.Sprintf(mergePrompt, language, strings.Join(partials, "\n\n")), opts)
	if err != nil {
		return "", &SummaryError{Stage: "merge", Err: err}
	}

	return strings.TrimSpace(merged), nil
}

// chunkText splits text into contiguous, non-overlapping windows of at most
// size bytes, never cutting inside a UTF-8 rune. Boundaries are otherwise
// purely positional, mid-sentence splits included; the merge call is
// responsible for restoring logical order.
func chunkText(text string, size int) []string {
	var chunks []string
	for len(text) > size {
		cut := size
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			// A single rune wider than the window; split it rather than loop.
			cut = size
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return append(chunks, text)
}
