package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"text-vectorizer/config"
	"text-vectorizer/internal/server"

	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Server.Addr = addr
			}

			logger, err := server.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			logger.WithField("service", "text-vectorizer").Info("Starting server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.NewServer(cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address, overrides the config")
	return cmd
}
