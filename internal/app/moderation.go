package app

import (
	"context"
	"fmt"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

// canonicalID namespaces a raw provider id so records from multiple
// providers can never collide in the overlay.
func canonicalID(rawID int) string { return fmt.Sprintf("hostaway-%d", rawID) }

// ModerationService owns status changes. Approve adds the review to the
// durable approved set; reject and pending both clear it — "not approved"
// is the only persisted negative state.
type ModerationService struct {
	overlay *Overlay
	cache   domain.Cache
}

func NewModerationService(o *Overlay, c domain.Cache) *ModerationService {
	return &ModerationService{overlay: o, cache: c}
}

// SetStatus applies a moderation decision for a raw review id. Idempotent;
// returns ErrInvalidStatus for anything outside approved/rejected/pending.
func (m *ModerationService) SetStatus(ctx context.Context, rawID int, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	id := canonicalID(rawID)
	if status == domain.StatusApproved {
		m.overlay.Approve(id)
	} else {
		m.overlay.Reject(id)
	}
	m.invalidateMetrics(ctx)
	return nil
}

// Metrics depend on the overlay, so any decision drops the cached aggregates.
func (m *ModerationService) invalidateMetrics(ctx context.Context) {
	if m.cache == nil {
		return
	}
	for _, p := range domain.Catalog() {
		_ = m.cache.Del(ctx, metricsKey(p.ID))
	}
	_ = m.cache.Del(ctx, keyMetricsAll)
}
