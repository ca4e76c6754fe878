package domain

// Property is one entry of the fixed portfolio catalog. The rating/review
// numbers here are catalog-level presentation values; live numbers come from
// PropertyMetrics.
type Property struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Type            string  `json:"type"` // apartment | house | studio | loft
	AverageRating   float64 `json:"averageRating"`
	TotalReviews    int     `json:"totalReviews"`
	ApprovedReviews int     `json:"approvedReviews"`
}

// PropertyMetrics is the derived aggregate for one property. It is recomputed
// on demand from the current review set plus the status overlay and is never
// itself a source of truth.
type PropertyMetrics struct {
	PropertyID      string             `json:"propertyId"`
	AverageRating   float64            `json:"averageRating"` // 1-5 scale, 1 decimal, 0 when no rated reviews
	TotalReviews    int                `json:"totalReviews"`
	ApprovedReviews int                `json:"approvedReviews"`
	ChannelBreakdown map[string]int    `json:"channelBreakdown"`
	CategoryRatings map[string]float64 `json:"categoryRatings"`
	RecentTrend     string             `json:"recentTrend"` // up | down | stable; always stable, no time-series source
	ResponseRate    int                `json:"responseRate"`
}

// Catalog returns the fixed property portfolio, in display order. A property
// with zero reviews still gets a (zeroed) metrics entry.
func Catalog() []Property {
	return []Property{
		{ID: "prop-1", Name: "Downtown Luxury Loft", Location: "Manhattan, NYC", Type: "loft", AverageRating: 4.8, TotalReviews: 127, ApprovedReviews: 98},
		{ID: "prop-2", Name: "Cozy Brooklyn Apartment", Location: "Brooklyn, NYC", Type: "apartment", AverageRating: 4.6, TotalReviews: 89, ApprovedReviews: 76},
		{ID: "prop-3", Name: "Modern Studio Space", Location: "Queens, NYC", Type: "studio", AverageRating: 4.4, TotalReviews: 56, ApprovedReviews: 45},
	}
}
