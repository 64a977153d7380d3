package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/signalsfoundry/skyhook/catalog"
	"github.com/signalsfoundry/skyhook/internal/api"
	"github.com/signalsfoundry/skyhook/internal/logging"
	"github.com/signalsfoundry/skyhook/internal/observability"
)

type config struct {
	Addr        string `env:"SKYHOOK_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"SKYHOOK_METRICS_ADDR" envDefault:":9090"`
	CatalogPath string `env:"SKYHOOK_CATALOG_PATH"`
}

func main() {
	log := logging.NewFromEnv()
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error(ctx, "failed to parse environment config", logging.String("error", err.Error()))
		os.Exit(1)
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}

	cat := catalog.NewWithDefaults()
	loadCatalog(log, cat, cfg.CatalogPath)

	nMaterials, nBodies := cat.Counts()
	collector.SetCatalogCounts(nMaterials, nBodies)

	metricsSrv := serveMetrics(cfg.MetricsAddr, collector, log)

	server := api.NewServer(log, cat, collector)
	apiSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	log.Info(ctx, "starting calculation API server",
		logging.String("addr", cfg.Addr),
		logging.Int("materials", nMaterials),
		logging.Int("bodies", nBodies),
	)
	go func() {
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "API server exited", logging.String("error", err.Error()))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func loadCatalog(log logging.Logger, cat *catalog.Catalog, path string) {
	if path == "" || cat == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn(context.Background(), "skipping catalog load", logging.String("path", path), logging.String("error", err.Error()))
		return
	}
	defer f.Close()

	added, err := cat.LoadYAML(f)
	if err != nil {
		log.Warn(context.Background(), "failed to load catalog file", logging.String("path", path), logging.String("error", err.Error()))
		return
	}

	log.Info(context.Background(), "loaded catalog entries",
		logging.String("path", path),
		logging.Int("count", added),
	)
}
