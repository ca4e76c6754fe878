package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/http_server"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/hostaway"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/observability"
	redisad "github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/redis"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/app"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/shared"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/storage/overlay"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// durable approval overlay; degrade to a non-durable store if the
	// database cannot be opened so the dashboard keeps serving
	var store domain.StatusStore
	if ps, err := overlay.OpenPebble(cfg.OverlayDir); err != nil {
		log.Warn().Err(err).Str("dir", cfg.OverlayDir).
			Msg("overlay store unavailable, approvals will not persist")
		store = overlay.NewMemory()
	} else {
		defer ps.Close()
		store = ps
	}
	ov := app.NewOverlay(store)

	var provider domain.ReviewProvider
	if cfg.Provider == "hostaway" {
		cl, err := hostaway.New(cfg.HostawayBase, cfg.HostawayKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Hostaway client")
		}
		provider = cl
	} else {
		provider = hostaway.NewStatic()
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, serving without cache hits")
	}
	q := app.NewQueryService(provider, cache, ov, cfg.CacheTTL)
	m := app.NewModerationService(ov, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, M: m}, cfg.APIKeys)

	log.Info().Str("addr", cfg.HTTPAddr).Str("provider", cfg.Provider).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
