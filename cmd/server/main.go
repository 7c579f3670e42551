package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"bloodlink/internal/engine"
	"bloodlink/internal/geo"
	"bloodlink/internal/platform/config"
	"bloodlink/internal/platform/httpserver"
	"bloodlink/internal/platform/logger"
	"bloodlink/internal/platform/metrics"
	"bloodlink/internal/seed"
	httptransport "bloodlink/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the engine packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	topo, err := geo.LoadTopology(cfg.TopologyPath)
	if err != nil {
		log.Error("failed to load site topology", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	eng := engine.New(geo.NewGraph(topo),
		engine.WithLogger(log),
		engine.WithMetrics(m),
	)

	if cfg.SeedDonors {
		n, err := seed.Apply(context.Background(), eng, time.Now())
		if err != nil {
			log.Error("failed to seed donors", "error", err)
			os.Exit(1)
		}
		log.Info("sample donors seeded", "count", n)
	}

	handler := httptransport.New(eng, log, m)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting bloodlink", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
