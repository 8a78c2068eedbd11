package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/coastfi/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		Long: `Serve the calculator over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/coastfi      Coast FI result for a set of inputs
  POST /v1/projections  year-by-year projection
  POST /v1/plan         result, projection and derived metrics
  POST /v1/solve        contribution, savings and retirement age solutions

The listen address defaults to $COASTFI_ADDR, then :8080.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if !cmd.Flags().Changed("addr") {
				if env := os.Getenv("COASTFI_ADDR"); env != "" {
					addr = env
				}
			}

			srv := server.New(newEngine(cmd))
			srv.Logger = simpleCLILogger{}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	return cmd
}
