/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the chroma REST API server.

The pack, unpack and catalog endpoints are open. The palette endpoints
require the X-API-Key header when an API key is configured.

Examples:
  chroma serve
  chroma serve --port 9000 --bind 0.0.0.0
  chroma serve --config ./chroma.yaml --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverConfig := api.ServerConfig{
			Bind:   settings.Bind,
			Port:   settings.Port,
			APIKey: settings.APIKey,
		}
		if cmd.Flags().Changed("port") {
			serverConfig.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			serverConfig.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			serverConfig.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		if serverConfig.APIKey == "" {
			logger.Warn("no API key configured, palette endpoints are unauthenticated")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withStore(func(store api.ColorStore) error {
			return serve(ctx, store, serverConfig)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for the palette endpoints (overrides config)")
}

func serve(ctx context.Context, store api.ColorStore, serverConfig api.ServerConfig) error {
	starter := container.GetServerFactory().CreateServerStarter()
	logger.WithField("addr", serverConfig.Bind).WithField("port", serverConfig.Port).Info("starting chroma server")
	if err := starter.StartServer(ctx, store, serverConfig, logger); err != nil {
		return errors.Wrap(err, "server failed")
	}
	return nil
}
