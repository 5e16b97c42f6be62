package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dhwani/config"
	"dhwani/core/pipeline"
	"dhwani/core/sarvam"
	"dhwani/core/summarize"
	"dhwani/storage"
)

var pipelineLang string

var pipelineCmd = &cobra.Command{
	Use:   "pipeline <file.pdf>",
	Short: "Run the briefing pipeline on a local PDF",
	Long:  `Run extract, summarize, translate and synthesize against the live services for one local PDF, without the HTTP server. Useful as a smoke test of the API keys.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initLogging()
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read %s: %v", args[0], err)
		}

		store, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}

		summarizer := summarize.NewGeminiSummarizer(cfg.GeminiAPIKey, cfg.GeminiModel)
		sarvamClient := sarvam.NewClient(cfg.SarvamAPIKey)
		sarvamClient.SetBaseURL(cfg.SarvamBaseURL)

		runner := pipeline.NewRunner(summarizer, sarvamClient, sarvamClient, store)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		briefing, err := runner.Run(ctx, data, pipelineLang)
		if err != nil {
			log.Fatalf("Pipeline failed: %v", err)
		}

		fmt.Printf("Briefing %s (%s)\n", briefing.ID, briefing.LanguageCode)
		fmt.Printf("Summary:\n%s\n\n", briefing.Summary)
		fmt.Printf("Translation:\n%s\n\n", briefing.Translation)
		fmt.Printf("Audio stored as: %s\n", briefing.AudioObject)
	},
}

func init() {
	pipelineCmd.Flags().StringVarP(&pipelineLang, "language", "l", "hi", "target language code")
	rootCmd.AddCommand(pipelineCmd)
}
