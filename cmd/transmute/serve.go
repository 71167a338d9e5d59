package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/transmutehq/transmute/internal/common"
	"github.com/transmutehq/transmute/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference conversion service",
		Long: `Run the conversion service the TUI talks to. Exposes the two
conversion endpoints plus /health and Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := viper.GetString("serve.addr")

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errChan := make(chan error, 1)
			go func() {
				slog.Info("conversion service started", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			select {
			case err := <-errChan:
				common.LogError(err, "conversion service failed", common.Fields{"addr": addr})
				return err
			case <-cmd.Context().Done():
			}

			slog.Info("shutting down conversion service")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
