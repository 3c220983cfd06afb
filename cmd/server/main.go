package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"concursos/internal/concursos/catalog"
	"concursos/internal/concursos/handler"
	"concursos/internal/concursos/metrics"
	"concursos/internal/concursos/service"
	"concursos/internal/concursos/tracer"
	"concursos/internal/platform/config"
	"concursos/internal/platform/health"
	"concursos/internal/platform/httpserver"
	"concursos/internal/platform/logger"
	httptransport "concursos/internal/transport/http"
	"concursos/pkg/platform/middleware/metadata"
	request "concursos/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Lookup logic lives in internal/concursos.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "concursos-server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	cat, err := catalog.Open(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	stats := cat.Stats()

	log.Info("initializing concursos",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"lookup_latency", cfg.LookupLatency.String(),
		"seed_file", cfg.SeedFile,
		"candidates", stats.Candidates,
		"openings", stats.Openings,
	)
	if stats.DuplicateCodes > 0 {
		log.Warn("catalog has duplicate opening codes; lookups resolve to the first", "duplicates", stats.DuplicateCodes)
	}

	svc := service.New(cat,
		service.WithLatency(cfg.LookupLatency),
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithTracer(tracer.NewOTel()),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("catalog", cat.Ready)
	healthHandler.RegisterInfo("catalog", func() any { return cat.Stats() })

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:         log,
		Lookups:        handler.New(handler.NewSessions(svc), log),
		Health:         healthHandler,
		Metadata:       metadata.NewMiddleware(&metadata.Config{TrustedProxies: cfg.TrustedProxies}),
		HTTPMetrics:    request.NewMetrics(),
		MetricsHandler: promhttp.Handler(),
		RequestTimeout: cfg.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)
	if err := httpserver.Run(ctx, srv, log); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	log.Info("server stopped")
	return nil
}
