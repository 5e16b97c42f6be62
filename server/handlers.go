package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"dhwani/apperr"
	"dhwani/config"
	"dhwani/logger"
	"dhwani/model"
	"dhwani/storage"
)

// BriefingRunner runs the briefing pipeline for one uploaded document.
type BriefingRunner interface {
	Run(ctx context.Context, pdfData []byte, targetLang string) (*model.Briefing, error)
}

// APIHandler handles all API requests.
type APIHandler struct {
	runner BriefingRunner
	store  storage.ObjectStore
	cfg    *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(runner BriefingRunner, store storage.ObjectStore, cfg *config.Config) *APIHandler {
	return &APIHandler{
		runner: runner,
		store:  store,
		cfg:    cfg,
	}
}

// pdfMagic is the mandatory header of every PDF file.
var pdfMagic = []byte("%PDF-")

// CreateBriefingHandler handles the briefing pipeline request.
// Expected multipart form fields:
// - pdf_file: the document to summarize (PDF only)
// - language_code: target language, one of the supported set
func (h *APIHandler) CreateBriefingHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadMB << 20); err != nil {
		writeError(w, apperr.Wrap(apperr.KindValidation, "could not parse multipart form", err))
		return
	}

	// Validate the language selection before touching the file so a bad
	// code never reaches extraction or any external service.
	langCode := r.FormValue("language_code")
	if langCode == "" {
		writeError(w, apperr.New(apperr.KindValidation, "missing 'language_code' in form"))
		return
	}
	if !model.IsSupportedLanguage(langCode) {
		writeError(w, apperr.Validationf("unsupported language code %q", langCode))
		return
	}

	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		writeError(w, apperr.New(apperr.KindValidation, "missing 'pdf_file' in form"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, apperr.Validationf("file %q is not a PDF", header.Filename))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, apperr.Wrap(apperr.KindValidation, "could not read uploaded file", err))
		return
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		writeError(w, apperr.Validationf("file %q is not a PDF", header.Filename))
		return
	}

	logger.Info("briefing requested",
		logger.String("filename", header.Filename),
		logger.String("language_code", langCode),
		logger.Int("bytes", len(data)),
	)

	briefing, err := h.runner.Run(r.Context(), data, langCode)
	if err != nil {
		writeError(w, err)
		return
	}
	briefing.AudioURL = "/audio/" + briefing.AudioObject

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(briefing)
}

// LanguagesHandler returns the supported target languages.
func (h *APIHandler) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"languages": model.SupportedLanguages(),
	})
}

// AudioHandler streams a stored audio artifact.
func (h *APIHandler) AudioHandler(w http.ResponseWriter, r *http.Request) {
	object := mux.Vars(r)["object"]

	reader, err := h.store.Get(r.Context(), object)
	if err != nil {
		logger.Warn("audio object not found",
			logger.String("object", object),
			logger.ErrorField(err),
		)
		http.Error(w, "Audio not found", http.StatusNotFound)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "audio/wav")
	if _, err := io.Copy(w, reader); err != nil {
		logger.Error("error streaming audio object",
			logger.String("object", object),
			logger.ErrorField(err),
		)
	}
}

// HealthHandler reports liveness.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// writeError maps a pipeline failure onto an HTTP status and a JSON error
// envelope. Service failure causes are logged but never sent to clients.
func writeError(w http.ResponseWriter, err error) {
	kind := apperr.Kind(err)

	// For user-correctable failures the taxonomy message is the guidance;
	// everything else gets a generic message.
	message := "request failed"
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	var status int
	switch kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindExtraction:
		status = http.StatusUnprocessableEntity
		message = "Could not extract text from the PDF. It might be encrypted, corrupted, or scanned images."
	case apperr.KindUnsupportedLanguage:
		status = http.StatusBadRequest
		message = "The requested language is not supported for speech synthesis."
	default:
		status = http.StatusBadGateway
		message = "An external service failed while processing the document. Please try again."
	}

	if status >= 500 {
		logger.Error("briefing request failed", logger.String("kind", string(kind)), logger.ErrorField(err))
	} else {
		logger.Warn("briefing request rejected", logger.String("kind", string(kind)), logger.ErrorField(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"kind":    string(kind),
			"message": message,
		},
	})
}
