package hostaway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/hostaway"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

func TestClient_ListReviews_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("missing API key header, got %q", got)
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"result": []map[string]any{{"id": 7454, "listingName": "Downtown Luxury Loft"}},
			})
		}
	}))
	defer ts.Close()

	cl, err := hostaway.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.ListReviews(ctx, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7454 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetReview_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := hostaway.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err = cl.GetReview(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err %v, want ErrNotFound", err)
	}
}

func TestClient_ListReviews_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl, err := hostaway.New(ts.URL, "bad-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err = cl.ListReviews(context.Background(), ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err %v, want ErrUnauthorized", err)
	}
}

func TestClient_RequiresKey(t *testing.T) {
	if _, err := hostaway.New("http://example.invalid", "", 5); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestStaticProvider(t *testing.T) {
	p := hostaway.NewStatic()
	ctx := context.Background()

	all, err := p.ListReviews(ctx, "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(all) != 14 {
		t.Fatalf("corpus size %d, want 14", len(all))
	}

	lofts, err := p.ListReviews(ctx, "downtown luxury")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, r := range lofts {
		if r.ListingName != "Downtown Luxury Loft" {
			t.Fatalf("filter leaked %q", r.ListingName)
		}
	}
	if len(lofts) != 5 {
		t.Fatalf("loft reviews %d, want 5", len(lofts))
	}

	r, err := p.GetReview(ctx, 7453)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.Rating != nil {
		t.Fatalf("review 7453 should have no overall rating")
	}
	if len(r.ReviewCategory) != 3 {
		t.Fatalf("categories %d, want 3", len(r.ReviewCategory))
	}

	if _, err := p.GetReview(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err %v, want ErrNotFound", err)
	}
}
