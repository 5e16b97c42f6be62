package cmd

import (
	"github.com/spf13/cobra"

	"dhwani/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the briefing HTTP server",
	Long:  `Start the HTTP server that accepts PDF uploads and returns summary, translation and speech audio.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging()
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
