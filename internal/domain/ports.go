package domain

import "context"

// ReviewProvider is the read-side port for the raw review source. The
// canonical deployment serves an embedded static corpus; the same interface
// covers the live Hostaway client.
type ReviewProvider interface {
	// ListReviews returns raw reviews, optionally narrowed to listings whose
	// name contains property (case-insensitive). Empty property means all.
	ListReviews(ctx context.Context, property string) ([]RawReview, error)
	// GetReview returns a single raw review or ErrNotFound.
	GetReview(ctx context.Context, id int) (RawReview, error)
}

// StatusStore is the durable key-value backing for the status overlay.
// Operations are synchronous and local; implementations must treat corrupt or
// unreadable storage as absent keys, not errors.
type StatusStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Criteria are the optional review filters, combined with logical AND.
// Zero values mean "not set"; Rating is a pointer because 0 is a legal
// rating for unrated reviews with no category scores.
type Criteria struct {
	Property string
	Channel  string
	Rating   *int
	Status   string // matched against the effective (overlay-merged) status
	Category string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
}

// Sort keys for public-facing listings.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
	SortHelpful = "helpful"
)
