/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with a generated API key",
	Long: `Create a chroma configuration file and data directory for local use.

This command will:
- Write a configuration file with default settings
- Generate an API key for the palette endpoints
- Create the data directory

Examples:
  chroma init
  chroma init --config ./chroma.yaml --data-dir ./data --print-key`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		printKey, _ := cmd.Flags().GetBool("print-key")
		out := cmd.OutOrStdout()

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			fmt.Fprintf(out, "Configuration already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(configPath, settings.DataDir)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return errors.Wrap(err, "failed to create data dir")
		}

		fmt.Fprintf(out, "Configuration created at %s\n", configPath)
		fmt.Fprintf(out, "Data directory: %s\n", cfg.DataDir)
		if printKey {
			fmt.Fprintf(out, "API key: %s\n", cfg.APIKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
}
