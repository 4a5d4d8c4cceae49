/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the fixhub configuration",
	Long: `Initialize the fixhub configuration file with sensible defaults and a
generated API key for the REST server.

Examples:
  fixhub init
  fixhub init --config=./fixhub.yaml --force`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return
		}

		journalDir, _ := cmd.Flags().GetString("journal-dir")
		bootstrapped, err := config.BootstrapConfig(configPath, journalDir)
		if err != nil {
			cmd.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Config written to %s\n", configPath)
		cmd.Printf("FIX version: %s\n", bootstrapped.Version)
		cmd.Printf("API key: %s\n", bootstrapped.Security.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  fixhub serve --config=%s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("journal-dir", "", "Directory for the message journal (default ./data)")
}
