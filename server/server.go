package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"dhwani/config"
	"dhwani/core/pipeline"
	"dhwani/core/sarvam"
	"dhwani/core/summarize"
	"dhwani/logger"
	"dhwani/storage"
)

// newRouter wires the API routes and middleware.
func newRouter(apiHandler *APIHandler) *mux.Router {
	router := mux.NewRouter()

	// CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	router.HandleFunc("/api/briefings", apiHandler.CreateBriefingHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/languages", apiHandler.LanguagesHandler).Methods(http.MethodGet)
	router.HandleFunc("/audio/{object}", apiHandler.AudioHandler).Methods(http.MethodGet)
	router.HandleFunc("/healthz", apiHandler.HealthHandler).Methods(http.MethodGet)

	return router
}

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", logger.ErrorField(err))
	}

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize object storage", logger.ErrorField(err))
	}

	summarizer := summarize.NewGeminiSummarizer(cfg.GeminiAPIKey, cfg.GeminiModel)
	sarvamClient := sarvam.NewClient(cfg.SarvamAPIKey)
	sarvamClient.SetBaseURL(cfg.SarvamBaseURL)

	runner := pipeline.NewRunner(summarizer, sarvamClient, sarvamClient, store)
	apiHandler := NewAPIHandler(runner, store, cfg)

	server.Handler = newRouter(apiHandler)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			logger.String("addr", cfg.ServerAddr),
			logger.String("gemini_model", cfg.GeminiModel),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("server stopped")
}
