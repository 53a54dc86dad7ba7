package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"dog-breeds/internal/adapters/storage"
	"dog-breeds/internal/adapters/upstream/thedogapi"
	"dog-breeds/internal/config"
	"dog-breeds/internal/platform/logger"
	"dog-breeds/internal/platform/metrics"
	"dog-breeds/internal/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(cfg.App.Name)

	store, err := storage.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Error("open store", map[string]any{"err": err, "driver": cfg.Database.Driver})
		return err
	}
	defer func() { _ = store.Close() }()

	// el esquema se asegura al arrancar
	if err := store.Migrate(ctx); err != nil {
		log.Error("migrate store", map[string]any{"err": err})
		return err
	}

	client, err := newCatalogClient(cfg.Upstream, log, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:             log,
			Catalog:            client,
			Favorites:          store.Favorites,
			Metrics:            m,
			DatabaseConfigured: cfg.Database.Configured(),
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"store":    store.Driver,
			"upstream": cfg.Upstream.BaseURL,
			"version":  version,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

func newCatalogClient(up config.UpstreamConfig, log logger.Logger, m *metrics.Metrics) (*thedogapi.Client, error) {
	client, err := thedogapi.NewClient(thedogapi.Config{
		BaseURL:      up.BaseURL,
		APIKey:       up.APIKey,
		APIKeyHeader: up.APIKeyHeader,
		Timeout:      up.Timeout,
		Metrics:      m,
	})
	if err != nil {
		log.Error("upstream client", map[string]any{"err": err, "base_url": up.BaseURL})
		return nil, err
	}
	if up.APIKey == "" {
		log.Warn("upstream api key not set; requests go unauthenticated", nil)
	}
	return client, nil
}
