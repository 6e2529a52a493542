/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/config"
	"github.com/ssargent/chromapack/pkg/di"
	"github.com/ssargent/chromapack/pkg/logging"
)

var (
	container *di.Container

	// settings and logger are resolved once per invocation by the root command
	settings *config.Config
	logger   *logrus.Logger
)

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "chroma - compact color encoding",
	Long: `chroma packs colors (Named, RGB, CMYK) into short tagged integer
sequences and unpacks them again, rejecting anything that is not a valid
encoding.

It also keeps a small palette of colors on disk, serves the codec over
HTTP and runs the randomized round-trip checks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return errors.New("dependency container not initialized")
		}
		return loadSettings(cmd)
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
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default is ~/.config/chroma/config.yaml)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the palette store")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// loadSettings reads the configuration file if there is one, applies flag
// overrides and builds the logger. A missing file means defaults.
func loadSettings(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var overrides config.Config
	if cmd.Flags().Changed("data-dir") {
		overrides.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("log-level") {
		overrides.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Override(overrides); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.NewWithOutput(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	settings = cfg
	logger = l
	logger.WithField("config", configPath).Debug("settings loaded")
	return nil
}
