package app

import (
	"github.com/rs/zerolog/log"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

const approvedMark = "approved"

// Overlay is the moderation state of the portfolio: a durable approved-id
// set layered over any StatusStore. "Not approved" is the only persisted
// negative state; rejecting a review just removes it from the set.
type Overlay struct {
	store domain.StatusStore
}

func NewOverlay(s domain.StatusStore) *Overlay { return &Overlay{store: s} }

func (o *Overlay) IsApproved(id string) bool {
	v, ok := o.store.Get(id)
	return ok && v == approvedMark
}

// Approve marks id approved. Idempotent. Write failures are logged and
// dropped: an approval that fails to persist degrades to "pending" on the
// next load rather than failing the caller.
func (o *Overlay) Approve(id string) {
	if err := o.store.Set(id, approvedMark); err != nil {
		log.Warn().Err(err).Str("review", id).Msg("overlay approve not persisted")
	}
}

// Reject removes id from the approved set. Idempotent.
func (o *Overlay) Reject(id string) {
	if err := o.store.Delete(id); err != nil {
		log.Warn().Err(err).Str("review", id).Msg("overlay reject not persisted")
	}
}

// Clear empties the overlay.
func (o *Overlay) Clear() {
	if err := o.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("overlay clear failed")
	}
}

// EffectiveStatus is the status actually used for filtering and visibility:
// overlay membership wins over the review's own (freshly normalized) status.
func EffectiveStatus(r domain.Review, o *Overlay) string {
	if o != nil && o.IsApproved(r.ID) {
		return domain.StatusApproved
	}
	return r.Status
}
