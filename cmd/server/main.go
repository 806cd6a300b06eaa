package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ameya/pathserve/internal/config"
	"github.com/ameya/pathserve/internal/graphdb"
	"github.com/ameya/pathserve/internal/logging"
	"github.com/ameya/pathserve/internal/repository"
	"github.com/ameya/pathserve/internal/server"
	"github.com/ameya/pathserve/internal/service"
	"github.com/ameya/pathserve/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	mirror, mirrorClient, err := buildMirror(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create mirror client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if mirrorClient != nil {
			if err := mirrorClient.Close(context.Background()); err != nil {
				logger.Warn("closing mirror client failed", "error", err)
			}
		}
	}()

	activeGraph := store.New()
	pathService := service.NewPathService(activeGraph, mirror, logger, cfg.Mirror.WriteWorkers)

	var metrics *server.Metrics
	var gatherer prometheus.Gatherer
	if cfg.HTTP.MetricsEnabled {
		registry := prometheus.NewRegistry()
		metrics = server.NewMetrics(registry)
		gatherer = registry
	}

	apiHandlers := server.NewAPIHandlers(logger, pathService, metrics, cfg.HTTP.MaxUploadBytes)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.MirrorHealthService{Mirror: mirror},
		API:              apiHandlers,
		MetricsGatherer:  gatherer,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildMirror(ctx context.Context, logger *slog.Logger, cfg config.Config) (*repository.Repository, graphdb.Client, error) {
	if cfg.Mirror.URI == "" {
		logger.Info("graph mirror disabled, running in-memory only")
		return nil, nil, nil
	}

	opts := graphdb.Options{
		URI:            cfg.Mirror.URI,
		Database:       cfg.Mirror.Database,
		Username:       cfg.Mirror.Username,
		Password:       cfg.Mirror.Password,
		MaxConnections: cfg.Mirror.MaxConnections,
	}
	client, err := graphdb.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return repository.New(client), client, nil
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
