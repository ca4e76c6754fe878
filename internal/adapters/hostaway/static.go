package hostaway

import (
	"context"
	"strings"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

// StaticProvider serves the embedded review corpus. It is the default data
// source: the dashboard runs against a fixed snapshot, no upstream needed.
type StaticProvider struct{}

func NewStatic() *StaticProvider { return &StaticProvider{} }

func (s *StaticProvider) ListReviews(_ context.Context, property string) ([]domain.RawReview, error) {
	needle := strings.ToLower(property)
	out := make([]domain.RawReview, 0, len(corpus))
	for _, r := range corpus {
		if needle != "" && !strings.Contains(strings.ToLower(r.ListingName), needle) {
			continue
		}
		r.ReviewCategory = append([]domain.CategoryRating(nil), r.ReviewCategory...)
		out = append(out, r)
	}
	return out, nil
}

func (s *StaticProvider) GetReview(_ context.Context, id int) (domain.RawReview, error) {
	for _, r := range corpus {
		if r.ID == id {
			r.ReviewCategory = append([]domain.CategoryRating(nil), r.ReviewCategory...)
			return r, nil
		}
	}
	return domain.RawReview{}, domain.ErrNotFound
}

func intp(i int) *int { return &i }

var corpus = []domain.RawReview{
	{
		ID: 7453, Type: "host-to-guest", Rating: nil,
		PublicReview: "Shane and family are wonderful! Would definitely host again :)",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "respect_house_rules", Rating: 10},
		},
		SubmittedAt: "2024-01-20 22:45:14", GuestName: "Shane Finkelstein",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
	},
	{
		ID: 7454, Type: "guest-to-host", Rating: intp(9),
		PublicReview: "Amazing stay! The property was exactly as described and Shane was very responsive. The location is perfect for exploring the city.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 9},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 8},
		},
		SubmittedAt: "2024-01-19 14:30:22", GuestName: "Maria Rodriguez",
		ListingName: "Downtown Luxury Loft",
	},
	{
		ID: 7455, Type: "guest-to-host", Rating: intp(7),
		PublicReview: "Good location but some maintenance issues. The host was quick to respond to our concerns.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 6},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 9},
			{Category: "amenities", Rating: 5},
		},
		SubmittedAt: "2024-01-18 09:15:33", GuestName: "David Chen",
		ListingName: "Cozy Brooklyn Apartment",
	},
	{
		ID: 7456, Type: "guest-to-host", Rating: intp(10),
		PublicReview: "Absolutely perfect! This place exceeded all expectations. The host was incredibly helpful and the property was spotless.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 10},
			{Category: "amenities", Rating: 10},
		},
		SubmittedAt: "2024-01-17 16:20:45", GuestName: "Jennifer Liu",
		ListingName: "Modern Studio Space",
	},
	{
		ID: 7457, Type: "guest-to-host", Rating: intp(6),
		PublicReview: "The place was okay but had some issues. The Wi-Fi was unreliable and the heating didn't work properly.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 7},
			{Category: "communication", Rating: 8},
			{Category: "location", Rating: 8},
			{Category: "value", Rating: 5},
			{Category: "amenities", Rating: 4},
		},
		SubmittedAt: "2024-01-16 11:30:12", GuestName: "Robert Johnson",
		ListingName: "Downtown Luxury Loft",
	},
	{
		ID: 7458, Type: "guest-to-host", Rating: intp(8),
		PublicReview: "Great location and comfortable stay. The host was very accommodating and the apartment was clean and well-equipped.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 8},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 7},
			{Category: "amenities", Rating: 8},
		},
		SubmittedAt: "2024-01-15 18:45:30", GuestName: "Sarah Williams",
		ListingName: "Cozy Brooklyn Apartment",
	},
	{
		ID: 7459, Type: "guest-to-host", Rating: intp(5),
		PublicReview: "Average experience. The place was clean but quite noisy due to street traffic. Good for a short stay.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 7},
			{Category: "communication", Rating: 6},
			{Category: "location", Rating: 4},
			{Category: "value", Rating: 6},
			{Category: "amenities", Rating: 5},
		},
		SubmittedAt: "2024-01-14 12:20:15", GuestName: "Michael Brown",
		ListingName: "Modern Studio Space",
	},
	{
		ID: 7460, Type: "guest-to-host", Rating: intp(9),
		PublicReview: "Exceptional stay! The loft was beautifully designed and the host provided excellent recommendations for local restaurants.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 9},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 8},
			{Category: "amenities", Rating: 9},
		},
		SubmittedAt: "2024-01-13 20:15:45", GuestName: "Emily Davis",
		ListingName: "Downtown Luxury Loft",
	},
	{
		ID: 7461, Type: "guest-to-host", Rating: intp(4),
		PublicReview: "Disappointing experience. The apartment was not as described and had several maintenance issues.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 5},
			{Category: "communication", Rating: 4},
			{Category: "location", Rating: 6},
			{Category: "value", Rating: 3},
			{Category: "amenities", Rating: 4},
		},
		SubmittedAt: "2024-01-12 14:30:20", GuestName: "James Wilson",
		ListingName: "Cozy Brooklyn Apartment",
	},
	{
		ID: 7462, Type: "guest-to-host", Rating: intp(7),
		PublicReview: "Nice studio with good amenities. The location was convenient and the host was responsive to messages.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 7},
			{Category: "communication", Rating: 8},
			{Category: "location", Rating: 8},
			{Category: "value", Rating: 7},
			{Category: "amenities", Rating: 6},
		},
		SubmittedAt: "2024-01-11 16:45:10", GuestName: "Lisa Anderson",
		ListingName: "Modern Studio Space",
	},
	{
		ID: 7463, Type: "guest-to-host", Rating: intp(10),
		PublicReview: "Perfect stay! Everything was exactly as advertised. The loft was spacious, clean, and in a fantastic location.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 9},
			{Category: "amenities", Rating: 10},
		},
		SubmittedAt: "2024-01-10 11:20:35", GuestName: "Alex Thompson",
		ListingName: "Downtown Luxury Loft",
	},
	{
		ID: 7464, Type: "guest-to-host", Rating: intp(6),
		PublicReview: "Decent place but could use some improvements. The bed was comfortable but the kitchen was quite small.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 6},
			{Category: "communication", Rating: 7},
			{Category: "location", Rating: 7},
			{Category: "value", Rating: 6},
			{Category: "amenities", Rating: 5},
		},
		SubmittedAt: "2024-01-09 19:30:25", GuestName: "Rachel Green",
		ListingName: "Cozy Brooklyn Apartment",
	},
	{
		ID: 7465, Type: "guest-to-host", Rating: intp(8),
		PublicReview: "Great value for money! The studio was modern and well-maintained. Would definitely stay again.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 8},
			{Category: "communication", Rating: 8},
			{Category: "location", Rating: 8},
			{Category: "value", Rating: 9},
			{Category: "amenities", Rating: 7},
		},
		SubmittedAt: "2024-01-08 15:15:40", GuestName: "Tom Martinez",
		ListingName: "Modern Studio Space",
	},
	{
		ID: 7466, Type: "guest-to-host", Rating: intp(3),
		PublicReview: "Not recommended. The place was dirty and the host was unresponsive. Many issues with basic amenities.",
		ReviewCategory: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 3},
			{Category: "communication", Rating: 2},
			{Category: "location", Rating: 5},
			{Category: "value", Rating: 2},
			{Category: "amenities", Rating: 3},
		},
		SubmittedAt: "2024-01-07 10:45:15", GuestName: "Kevin Lee",
		ListingName: "Downtown Luxury Loft",
	},
}
