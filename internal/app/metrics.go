package app

import (
	"math"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

// ComputeMetrics derives the aggregate statistics for one property from the
// current normalized review set merged with the status overlay. All rating
// math is on the canonical 1-5 scale; raw 0-10 category scores are halved at
// the boundary.
func ComputeMetrics(propertyID string, reviews []domain.Review, overlay *Overlay) domain.PropertyMetrics {
	var mine []domain.Review
	for _, r := range reviews {
		if r.PropertyID == propertyID {
			mine = append(mine, r)
		}
	}
	if len(mine) == 0 {
		return domain.PropertyMetrics{
			PropertyID:       propertyID,
			ChannelBreakdown: map[string]int{},
			CategoryRatings:  map[string]float64{},
			RecentTrend:      "stable",
		}
	}

	// Mean of rated reviews only; a 0 rating marks the unrated,
	// category-less case and is excluded.
	sum, rated := 0, 0
	for _, r := range mine {
		if r.Rating > 0 {
			sum += r.Rating
			rated++
		}
	}
	avg := 0.0
	if rated > 0 {
		avg = round1(float64(sum) / float64(rated))
	}

	channels := map[string]int{}
	for _, r := range mine {
		channels[r.Channel]++
	}

	// Per-category mean over every raw pair, halved to the 0-5 scale.
	catSums := map[string]float64{}
	catCounts := map[string]int{}
	for _, r := range mine {
		for _, c := range r.Categories {
			catSums[c.Category] += float64(c.Rating) / 2
			catCounts[c.Category]++
		}
	}
	catRatings := make(map[string]float64, len(catSums))
	for cat, s := range catSums {
		catRatings[cat] = round1(s / float64(catCounts[cat]))
	}

	approved := 0
	for _, r := range mine {
		if EffectiveStatus(r, overlay) == domain.StatusApproved {
			approved++
		}
	}

	return domain.PropertyMetrics{
		PropertyID:       propertyID,
		AverageRating:    avg,
		TotalReviews:     len(mine),
		ApprovedReviews:  approved,
		ChannelBreakdown: channels,
		CategoryRatings:  catRatings,
		RecentTrend:      "stable", // no time-windowed comparison; stub until a time-series source exists
		ResponseRate:     100,      // no response data modeled
	}
}

// ComputeAllMetrics computes metrics per catalog property, in catalog order.
// Properties with zero reviews appear zeroed.
func ComputeAllMetrics(props []domain.Property, reviews []domain.Review, overlay *Overlay) []domain.PropertyMetrics {
	out := make([]domain.PropertyMetrics, 0, len(props))
	for _, p := range props {
		out = append(out, ComputeMetrics(p.ID, reviews, overlay))
	}
	return out
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
