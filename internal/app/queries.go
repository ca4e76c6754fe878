package app

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

const (
	keyRawReviews = "reviews:raw"
	keyNormalized = "reviews:normalized"
	keyMetricsAll = "metrics:all"
)

func metricsKey(propertyID string) string { return "metrics:" + propertyID }

// QueryService is the cached read path: raw listings, normalized listings,
// filtered searches and per-property metrics. The overlay merge happens at
// read time so cached entries never bake in a moderation decision.
type QueryService struct {
	provider domain.ReviewProvider
	cache    domain.Cache
	overlay  *Overlay
	cacheTTL time.Duration
}

func NewQueryService(p domain.ReviewProvider, c domain.Cache, o *Overlay, ttl time.Duration) *QueryService {
	return &QueryService{provider: p, cache: c, overlay: o, cacheTTL: ttl}
}

// ListRaw returns provider-shaped reviews with the overlay-resolved status
// stamped on each record, optionally narrowed by a case-insensitive
// listing-name substring.
func (s *QueryService) ListRaw(ctx context.Context, property string) ([]domain.RawReview, error) {
	raws, err := s.loadRaw(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RawReview, 0, len(raws))
	needle := strings.ToLower(property)
	for _, r := range raws {
		if needle != "" && !strings.Contains(strings.ToLower(r.ListingName), needle) {
			continue
		}
		r.Status = s.resolvedStatus(r.ID)
		out = append(out, r)
	}
	return out, nil
}

// GetRaw returns a single provider-shaped review, unstamped, or ErrNotFound.
func (s *QueryService) GetRaw(ctx context.Context, id int) (domain.RawReview, error) {
	raws, err := s.loadRaw(ctx)
	if err != nil {
		return domain.RawReview{}, err
	}
	for _, r := range raws {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.RawReview{}, domain.ErrNotFound
}

// ListNormalized returns the canonical review set. The cached copy always
// carries the normalizer's default status; callers get moderation through
// EffectiveStatus or Search.
func (s *QueryService) ListNormalized(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if ok, _ := s.cacheGet(ctx, keyNormalized, &out); ok {
		return copyReviews(out), nil
	}
	raws, err := s.loadRaw(ctx)
	if err != nil {
		return nil, err
	}
	out = NormalizeAll(raws)
	s.cacheSet(ctx, keyNormalized, out)
	return copyReviews(out), nil
}

// Search filters the normalized set by criteria and optionally sorts it.
func (s *QueryService) Search(ctx context.Context, c domain.Criteria, sortKey string) ([]domain.Review, error) {
	reviews, err := s.ListNormalized(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].Status = EffectiveStatus(reviews[i], s.overlay)
	}
	out := Filter(reviews, c, s.overlay)
	if sortKey != "" {
		out = Sort(out, sortKey)
	}
	return out, nil
}

// PropertyMetrics returns the derived aggregate for one property.
func (s *QueryService) PropertyMetrics(ctx context.Context, propertyID string) (domain.PropertyMetrics, error) {
	var m domain.PropertyMetrics
	if ok, _ := s.cacheGet(ctx, metricsKey(propertyID), &m); ok {
		return m, nil
	}
	reviews, err := s.ListNormalized(ctx)
	if err != nil {
		return domain.PropertyMetrics{}, err
	}
	m = ComputeMetrics(propertyID, reviews, s.overlay)
	s.cacheSet(ctx, metricsKey(propertyID), m)
	return m, nil
}

// AllMetrics returns per-property metrics in catalog order; zero-review
// properties still appear, zeroed.
func (s *QueryService) AllMetrics(ctx context.Context) ([]domain.PropertyMetrics, error) {
	var out []domain.PropertyMetrics
	if ok, _ := s.cacheGet(ctx, keyMetricsAll, &out); ok {
		return out, nil
	}
	reviews, err := s.ListNormalized(ctx)
	if err != nil {
		return nil, err
	}
	out = ComputeAllMetrics(domain.Catalog(), reviews, s.overlay)
	s.cacheSet(ctx, keyMetricsAll, out)
	return out, nil
}

/********** internals **********/

func (s *QueryService) loadRaw(ctx context.Context) ([]domain.RawReview, error) {
	var raws []domain.RawReview
	if ok, _ := s.cacheGet(ctx, keyRawReviews, &raws); ok {
		return raws, nil
	}
	raws, err := s.provider.ListReviews(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyRawReviews, raws)
	return raws, nil
}

func (s *QueryService) resolvedStatus(rawID int) string {
	if s.overlay != nil && s.overlay.IsApproved(canonicalID(rawID)) {
		return domain.StatusApproved
	}
	return domain.StatusPending
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.Get(ctx, key, dst)
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	// size guard: never cache a pathological payload
	if b, _ := json.Marshal(v); len(b) >= 1_000_000 {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

// copy slice to avoid aliasing the cached backing array
func copyReviews(in []domain.Review) []domain.Review {
	out := make([]domain.Review, len(in))
	copy(out, in)
	return out
}
