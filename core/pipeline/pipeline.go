// Package pipeline runs the briefing workflow: extract the PDF text,
// summarize it in English, translate the summary, synthesize speech and
// store the audio. The stages are strictly sequential and the first
// failure stops the run; no later stage executes and no partial artifacts
// are returned.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dhwani/apperr"
	"dhwani/core/extract"
	"dhwani/core/summarize"
	"dhwani/logger"
	"dhwani/model"
	"dhwani/storage"
)

// Translator converts text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Synthesizer converts text into spoken audio bytes.
type Synthesizer interface {
	TextToSpeech(ctx context.Context, text, targetLang string) ([]byte, error)
}

// Runner owns the pipeline stages. Stages are injected so tests can
// replace the hosted services with doubles.
type Runner struct {
	extractText func([]byte) (string, error)
	summarizer  summarize.Summarizer
	translator  Translator
	synthesizer Synthesizer
	store       storage.ObjectStore
}

// NewRunner creates a pipeline runner over the given stage clients.
func NewRunner(summarizer summarize.Summarizer, translator Translator, synthesizer Synthesizer, store storage.ObjectStore) *Runner {
	return &Runner{
		extractText: extract.Text,
		summarizer:  summarizer,
		translator:  translator,
		synthesizer: synthesizer,
		store:       store,
	}
}

// Run executes the full workflow for one uploaded document and returns the
// finished briefing. The target language is validated before any stage
// runs, including extraction.
func (r *Runner) Run(ctx context.Context, pdfData []byte, targetLang string) (*model.Briefing, error) {
	if !model.IsSupportedLanguage(targetLang) {
		return nil, apperr.Validationf("unsupported language code %q", targetLang)
	}

	id := uuid.NewString()
	start := time.Now()

	text, err := r.extractText(pdfData)
	if err != nil {
		return nil, err
	}
	logger.Debug("extracted document text",
		logger.String("briefing_id", id),
		logger.Int("chars", len(text)),
	)

	summary, err := r.summarizer.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}
	logger.Debug("summarized document",
		logger.String("briefing_id", id),
		logger.Int("chars", len(summary)),
	)

	translation, err := r.translator.Translate(ctx, summary, targetLang)
	if err != nil {
		return nil, err
	}

	audio, err := r.synthesizer.TextToSpeech(ctx, translation, targetLang)
	if err != nil {
		return nil, err
	}

	audioObject := fmt.Sprintf("briefing_%s.wav", id)
	if err := r.store.Put(ctx, audioObject, audio, "audio/wav"); err != nil {
		return nil, apperr.Wrap(apperr.KindService, "store audio artifact", err)
	}

	logger.Info("briefing pipeline finished",
		logger.String("briefing_id", id),
		logger.String("language_code", targetLang),
		logger.Int("audio_bytes", len(audio)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return &model.Briefing{
		ID:           id,
		LanguageCode: targetLang,
		Summary:      summary,
		Translation:  translation,
		AudioObject:  audioObject,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
