package app

import (
	"sort"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

// Filter applies the criteria over reviews with logical AND, preserving
// input order. Status is matched against the effective (overlay-merged)
// status, never the raw field. Dates are inclusive bounds; normalized dates
// are ISO calendar dates so plain string comparison orders them.
func Filter(reviews []domain.Review, c domain.Criteria, overlay *Overlay) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if c.Property != "" && r.PropertyID != c.Property {
			continue
		}
		if c.Channel != "" && r.Channel != c.Channel {
			continue
		}
		if c.Rating != nil && r.Rating != *c.Rating {
			continue
		}
		if c.Status != "" && EffectiveStatus(r, overlay) != c.Status {
			continue
		}
		if c.Category != "" && r.Category != c.Category {
			continue
		}
		if c.DateFrom != "" && r.Date < c.DateFrom {
			continue
		}
		if c.DateTo != "" && r.Date > c.DateTo {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort orders a copy of reviews by the given key. Ties keep their original
// relative order; an unknown key returns the input order unchanged.
func Sort(reviews []domain.Review, key string) []domain.Review {
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	switch key {
	case domain.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	case domain.SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case domain.SortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case domain.SortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	case domain.SortHelpful:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Helpful > out[j].Helpful })
	}
	return out
}
