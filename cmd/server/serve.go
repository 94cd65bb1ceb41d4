package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Clark-Hu/movie-catalog/db"
	httpserver "github.com/Clark-Hu/movie-catalog/internal/http"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
	"github.com/Clark-Hu/movie-catalog/internal/store"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if migrate {
				if err := rt.store.Migrate(ctx, db.Migrations, "migrations", store.Up); err != nil {
					return err
				}
			}

			repo := repository.New(rt.store)
			server := httpserver.New(rt.cfg, rt.store, repo.Movies, rt.logger)
			return runServer(ctx, server, rt.logger)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply up migrations before serving")
	return cmd
}

func runServer(ctx context.Context, server *httpserver.Server, logger *zap.Logger) error {
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	var runErr error
	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			runErr = err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Warn("graceful shutdown error", zap.Error(err))
	}
	return runErr
}
