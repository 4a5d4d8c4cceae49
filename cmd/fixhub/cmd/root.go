/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/config"
)

// cfg is the loaded configuration, populated before any subcommand runs.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixhub",
	Short: "fixhub - FIX message codec toolkit",
	Long: `fixhub parses, validates and builds FIX protocol messages.

Raw messages may use the real SOH (0x01) field delimiter or any of the
common substitutes (| ^ ~ , ; tab); fixhub detects the delimiter when it
is not declared.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			cfg = config.DefaultConfig()
		}
		if version, _ := cmd.Flags().GetString("fix-version"); version != "" {
			cfg.Version = version
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/fixhub/config.yaml)")
	rootCmd.PersistentFlags().String("fix-version", "", "FIX protocol version override (e.g. FIX.4.4)")
}
