package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"dhwani/apperr"
)

const summaryPrompt = `Summarize the following document in only 1 paragraph in less than 1200 characters strictly.
Provide ONLY the English summary. Do not add any other introductory text or formatting.

Document:
%s`

// GeminiSummarizer calls the Gemini API for summarization. A request that
// fails is surfaced immediately; there is no local retry.
type GeminiSummarizer struct {
	apiKey string
	model  string
}

// NewGeminiSummarizer creates a summarizer using the given API key and model
// name, e.g. "gemini-2.5-pro".
func NewGeminiSummarizer(apiKey, model string) *GeminiSummarizer {
	return &GeminiSummarizer{apiKey: apiKey, model: model}
}

// Summarize sends the document text to Gemini and returns the summary.
func (s *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindService, "create Gemini client", err)
	}

	prompt := fmt.Sprintf(summaryPrompt, text)
	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", apperr.Wrap(apperr.KindService, "Gemini generate content", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", apperr.New(apperr.KindService, "empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", apperr.New(apperr.KindService, "Gemini returned no text")
	}
	return summary, nil
}
