package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"residence-intake/internal/config"
	"residence-intake/internal/engine"
	"residence-intake/internal/handler"
	"residence-intake/internal/logger"
	"residence-intake/internal/metrics"
	"residence-intake/internal/registry"
	"residence-intake/internal/requirements"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	catalogs := registry.New(cfg.RegistryURL, cfg.RegistryTimeout, requirements.Default(),
		registry.WithLogger(log),
		registry.WithMetrics(m),
	)

	h := handler.New(catalogs,
		handler.WithPolicy(engine.IntakePolicy{AllowAcquisition: cfg.AllowAcquisition}),
		handler.WithMetrics(m),
		handler.WithLogger(log),
	)

	server := &fasthttp.Server{
		Handler:      h.Handle,
		Name:         "residence-intake",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go catalogs.Watch(ctx, cfg.RegistryRefresh)

	errCh := make(chan error, 1)
	go func() {
		log.Info("residence intake starting",
			"addr", cfg.Addr,
			"registry_url", cfg.RegistryURL,
			"registry_refresh", cfg.RegistryRefresh.String(),
			"allow_acquisition", cfg.AllowAcquisition,
		)
		errCh <- server.ListenAndServe(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}
}
