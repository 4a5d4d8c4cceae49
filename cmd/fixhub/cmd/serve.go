/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/api"
	"github.com/ssargent/fixhub/pkg/journal"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the fixhub REST API server.

The server exposes parse, validate and build endpoints, a journal of
processed messages, and Prometheus metrics at /metrics.

Examples:
  fixhub serve --port=8080 --api-key=mysecretkey
  fixhub serve --journal-dir=./data --bind=0.0.0.0`,
	Run: func(cmd *cobra.Command, args []string) {
		if port, _ := cmd.Flags().GetInt("port"); cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Security.APIKey = apiKey
		}
		if journalDir, _ := cmd.Flags().GetString("journal-dir"); journalDir != "" {
			cfg.JournalDir = journalDir
		}

		catalog, err := loadCatalog()
		if err != nil {
			cmd.Printf("Error loading catalog: %v\n", err)
			return
		}

		if err := os.MkdirAll(cfg.JournalDir, 0750); err != nil {
			cmd.Printf("Error creating journal dir: %v\n", err)
			return
		}
		jrnl, err := journal.Open(cfg.JournalDir)
		if err != nil {
			cmd.Printf("Error opening journal: %v\n", err)
			return
		}
		defer jrnl.Close()

		serverConfig := api.ServerConfig{
			Port:      cfg.Port,
			Bind:      cfg.Bind,
			APIKey:    cfg.Security.APIKey,
			Version:   cfg.Version,
			Delimiter: cfg.DisplayDelimiter(),
		}
		if err := api.StartServer(serverConfig, catalog, jrnl); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for authentication (empty disables auth)")
	serveCmd.Flags().String("journal-dir", "", "Directory for the message journal")
}
