package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dhwani/config"
	"dhwani/logger"
	"dhwani/server"
)

var rootCmd = &cobra.Command{
	Use:   "dhwani",
	Short: "Dhwani turns PDFs into spoken-audio briefings in Indian languages.",
	Run: func(cmd *cobra.Command, args []string) {
		initLogging()
		server.Start()
	},
}

// initLogging configures the process logger from the environment config.
func initLogging() {
	cfg := config.Load()
	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
