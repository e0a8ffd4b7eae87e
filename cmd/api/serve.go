package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/agenda-scheduler/internal/routes"
)

const (
	pingTimeout     = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			deps, cleanup, err := buildDeps(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			if autoMigrate {
				if err := migrateIfGorm(cfg); err != nil {
					return err
				}
			}

			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()
			r.Use(gin.Recovery())
			routes.RegisterRoutes(r, deps)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info().
					Str("addr", cfg.Addr()).
					Str("storage", cfg.StorageDriver).
					Str("timezone", cfg.Timezone).
					Msg("server running")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "roda as migrações antes de subir")
	return cmd
}
