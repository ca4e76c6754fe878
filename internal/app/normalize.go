package app

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

/********** mapping registries (single source of truth) **********/

// propertyTable maps listing-name substrings (lowercase) to portfolio ids.
// Checked in order; unmatched names fall through to the slug path.
var propertyTable = []struct {
	substr string
	id     string
}{
	{"downtown luxury loft", "prop-1"},
	{"cozy brooklyn apartment", "prop-2"},
	{"modern studio space", "prop-3"},
	{"shoreditch heights", "prop-1"},
}

// categoryTable maps provider category names to the canonical enum.
// Anything not listed maps to "overall".
var categoryTable = map[string]string{
	"cleanliness":         domain.CategoryCleanliness,
	"communication":       domain.CategoryCommunication,
	"location":            domain.CategoryLocation,
	"value":               domain.CategoryValue,
	"respect_house_rules": domain.CategoryAmenities,
	"amenities":           domain.CategoryAmenities,
}

/********** normalizer **********/

// Normalize converts a provider-shaped review into the canonical Review.
// It never fails: every absent or malformed optional field degrades to a
// documented default. Only the presentation fields (helpful, stayDuration)
// are non-deterministic.
func Normalize(raw domain.RawReview) domain.Review {
	return normalizeAt(raw, time.Now())
}

// NormalizeAll maps a raw batch, preserving order.
func NormalizeAll(raws []domain.RawReview) []domain.Review {
	out := make([]domain.Review, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

func normalizeAt(raw domain.RawReview, now time.Time) domain.Review {
	return domain.Review{
		ID:           fmt.Sprintf("hostaway-%d", raw.ID),
		PropertyID:   propertyIDFor(raw.ListingName),
		PropertyName: defaultStr(raw.ListingName, "Unknown Property"),
		GuestName:    defaultStr(raw.GuestName, "Anonymous"),
		Rating:       canonicalRating(raw),
		Title:        titleFor(raw.Type),
		Content:      defaultStr(raw.PublicReview, "No review content available"),
		Date:         dateOnly(raw.SubmittedAt, now),
		Channel:      domain.ChannelHostaway,
		Category:     primaryCategory(raw.ReviewCategory),
		// Moderation is owned by the status overlay; the provider's own
		// status field is ignored here.
		Status:     domain.StatusPending,
		Categories: append([]domain.CategoryRating(nil), raw.ReviewCategory...),

		Helpful:      rand.Intn(10) + 1,
		VerifiedStay: true,
		StayDuration: rand.Intn(7) + 1,
	}
}

// canonicalRating converts the provider's 0-10 score to the 1-5 scale.
// When the overall score is absent it falls back to the category average
// (divided by 2, rounded); that branch is intentionally unclamped, so an
// empty category list yields 0.
func canonicalRating(raw domain.RawReview) int {
	if raw.Rating != nil {
		return clamp(int(math.Round(float64(*raw.Rating)/2)), 1, 5)
	}
	if len(raw.ReviewCategory) == 0 {
		return 0
	}
	sum := 0
	for _, c := range raw.ReviewCategory {
		sum += c.Rating
	}
	avg := float64(sum) / float64(len(raw.ReviewCategory))
	return int(math.Round(avg / 2))
}

// primaryCategory picks the highest-rated category entry (first occurrence
// wins ties) and maps it through the canonical table.
func primaryCategory(cats []domain.CategoryRating) string {
	if len(cats) == 0 {
		return domain.CategoryOverall
	}
	best := cats[0]
	for _, c := range cats[1:] {
		if c.Rating > best.Rating {
			best = c
		}
	}
	if mapped, ok := categoryTable[best.Category]; ok {
		return mapped
	}
	return domain.CategoryOverall
}

func propertyIDFor(listingName string) string {
	if listingName == "" {
		return "prop-unknown"
	}
	lower := strings.ToLower(listingName)
	for _, e := range propertyTable {
		if strings.Contains(lower, e.substr) {
			return e.id
		}
	}
	return "prop-" + slugify(listingName)
}

// slugify lowercases, strips non-alphanumerics, collapses whitespace to
// hyphens and caps the result at 20 characters.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n':
			b.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > 20 {
		slug = slug[:20]
	}
	return slug
}

func titleFor(reviewType string) string {
	if reviewType == "guest-to-host" {
		return "Guest Review"
	}
	return "Host Review"
}

// dateOnly keeps the calendar-date part of a "YYYY-MM-DD HH:MM:SS" stamp.
func dateOnly(submittedAt string, now time.Time) string {
	if f := strings.Fields(submittedAt); len(f) > 0 {
		return f[0]
	}
	return now.Format("2006-01-02")
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
