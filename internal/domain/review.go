package domain

// Review statuses as used for moderation and public visibility.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ChannelHostaway is the only channel this data source produces.
const ChannelHostaway = "hostaway"

// Canonical review categories.
const (
	CategoryCleanliness   = "cleanliness"
	CategoryCommunication = "communication"
	CategoryLocation      = "location"
	CategoryValue         = "value"
	CategoryAmenities     = "amenities"
	CategoryOverall       = "overall"
)

// CategoryRating is one provider-scale (0-10) category score on a review.
// Order matters: ties on the primary category resolve to the first entry.
type CategoryRating struct {
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

// RawReview is the provider-shaped record exactly as Hostaway returns it.
// Rating is nil when the guest skipped the overall score.
type RawReview struct {
	ID             int              `json:"id"`
	Type           string           `json:"type"` // host-to-guest | guest-to-host
	Rating         *int             `json:"rating"`
	PublicReview   string           `json:"publicReview"`
	ReviewCategory []CategoryRating `json:"reviewCategory"`
	SubmittedAt    string           `json:"submittedAt"`
	GuestName      string           `json:"guestName"`
	ListingName    string           `json:"listingName"`
	Status         string           `json:"status,omitempty"` // overlay-resolved, stamped on read
}

// Review is the canonical, application-facing record. It is derived fresh
// from RawReview on every load and never persisted.
type Review struct {
	ID           string           `json:"id"`
	PropertyID   string           `json:"propertyId"`
	PropertyName string           `json:"propertyName"`
	GuestName    string           `json:"guestName"`
	Rating       int              `json:"rating"` // 1-5 canonical; 0 only for unrated reviews with no category scores
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Date         string           `json:"date"` // YYYY-MM-DD
	Channel      string           `json:"channel"`
	Category     string           `json:"category"`
	Status       string           `json:"status"`
	Categories   []CategoryRating `json:"categories,omitempty"` // raw 0-10 pairs, kept for aggregation

	// Presentation-only fields, synthesized at normalization time.
	Helpful      int  `json:"helpful"`
	VerifiedStay bool `json:"verifiedStay"`
	StayDuration int  `json:"stayDuration"` // nights
}

// ValidStatus reports whether s is an accepted moderation status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
