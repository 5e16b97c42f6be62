package summarize

import "context"

// Summarizer produces a short English summary of document text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
