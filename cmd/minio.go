package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"dhwani/config"
	"dhwani/storage"
)

var minioCmd = &cobra.Command{
	Use:   "minio",
	Short: "Object storage connectivity test",
	Long:  `Check that the configured MinIO endpoint is reachable, the bucket exists, and a round-trip write/read works.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging()
		cfg := config.Load()
		fmt.Printf("MinIO endpoint: %s, bucket: %s\n", cfg.MinioEndpoint, cfg.MinioBucket)

		store, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Fatalf("MinIO ping failed: %v", err)
		}

		// Round-trip a small object to check write and read permissions.
		testName := "test/connection.txt"
		testBody := []byte("connection check at " + time.Now().Format(time.RFC3339))
		if err := store.Put(ctx, testName, testBody, "text/plain"); err != nil {
			log.Fatalf("Test object write failed: %v", err)
		}
		obj, err := store.Get(ctx, testName)
		if err != nil {
			log.Fatalf("Test object read failed: %v", err)
		}
		obj.Close()

		fmt.Println("MinIO connection test passed.")
	},
}

func init() {
	rootCmd.AddCommand(minioCmd)
}
