// Command main is the entry point for the dwitter API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dwitter/internal/bootstrap"
	"dwitter/internal/config"
	"dwitter/internal/observability"
	"dwitter/internal/server"
)

// @title dwitter API
// @version 2.0-beta
// @description Dweets and comments with author/moderator gated deletion.

// @host localhost:8375
// @BasePath /apiv2beta
// @schemes http https

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description "Token" or "Bearer" followed by a space and the token from /api-token-auth/.

func main() {
	fixture := flag.String("fixture", "", "YAML fixture to load on start (non-production only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		observability.Logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "dwitter-api",
		ServiceVersion: "2.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		observability.Logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	db, rdb, err := bootstrap.InitRuntime(context.Background(), cfg, bootstrap.Options{FixturePath: *fixture})
	if err != nil {
		observability.Logger.Error("failed to initialize runtime", "error", err)
		os.Exit(1)
	}

	srv, err := server.NewServerWithDeps(cfg, db, rdb)
	if err != nil {
		observability.Logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		observability.Logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			observability.Logger.Error("server shutdown error", "error", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			observability.Logger.Error("tracing shutdown error", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		observability.Logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
