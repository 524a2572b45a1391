package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sku-mapper/internal/config"
	"sku-mapper/internal/order"
	"sku-mapper/internal/skumap/service"
	serverhttp "sku-mapper/server/http"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.SetupLogger(cfg)

			store := service.NewStore(cfg.CatalogFile, logger)
			orders := order.NewProcessor(store, order.NewERPSimulator(logger), logger)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           serverhttp.NewRouter(cfg, logger, store, orders),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Info().Str("addr", cfg.Addr()).Str("catalog", cfg.CatalogFile).Msg("server starting")

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			// graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-errCh:
				logger.Error().Err(err).Msg("listen")
				return err
			case <-quit:
			}

			logger.Info().Msg("server shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			logger.Info().Msg("bye")
			return nil
		},
	}
}
