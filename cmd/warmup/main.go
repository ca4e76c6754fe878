// Command warmup pre-populates the Redis cache: it loads the review corpus,
// normalizes it, and computes metrics for every catalog property under a
// bounded worker pool. Run it after deploys or cache flushes so the first
// dashboard load stays fast.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/hostaway"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/observability"
	redisad "github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/redis"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/app"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/shared"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/storage/overlay"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("provider", cfg.Provider).
		Int("workers", cfg.Workers).
		Msg("warmup starting")

	var store domain.StatusStore
	if ps, err := overlay.OpenPebble(cfg.OverlayDir); err != nil {
		log.Warn().Err(err).Msg("overlay store unavailable, warming without approvals")
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
	q := app.NewQueryService(provider, cache, ov, cfg.CacheTTL)

	// populate the shared review keys once
	if _, err := q.ListNormalized(ctx); err != nil {
		log.Fatal().Err(err).Msg("loading reviews failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range domain.Catalog() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(propertyID string) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := q.PropertyMetrics(ctx, propertyID); err != nil {
				log.Warn().Str("property", propertyID).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("property", propertyID).Msg("warm ok")
		}(p.ID)
	}

	wg.Wait()

	if _, err := q.AllMetrics(ctx); err != nil {
		log.Warn().Err(err).Msg("warming portfolio metrics failed")
	}
	log.Info().Msg("warmup completed")
}
