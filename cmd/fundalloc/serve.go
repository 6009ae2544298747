package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fundalloc-go/internal/metrics"
	"github.com/ukaji3/fundalloc-go/internal/server"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP upload service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port > 0 {
				cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, logger, metrics.New()).ListenAndServe(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
