//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	server "github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/http_server"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/hostaway"
	redisad "github.com/shesheerrao0606/TheFelxDashboard/internal/adapters/redis"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/app"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/storage/overlay"
)

const apiKey = "demo-api-key-12345"

// buildStack wires the full service the way cmd/api does: static corpus,
// pebble overlay in dir, miniredis-backed cache.
func buildStack(t *testing.T, dir, redisAddr string) (http.Handler, func()) {
	t.Helper()
	ps, err := overlay.OpenPebble(dir)
	if err != nil {
		t.Fatalf("open overlay: %v", err)
	}
	ov := app.NewOverlay(ps)
	cache := redisad.New(redisAddr, "", 0)
	q := app.NewQueryService(hostaway.NewStatic(), cache, ov, 10*time.Minute)
	m := app.NewModerationService(ov, cache)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, M: m}, []string{apiKey})
	return srv.Mux(), func() { _ = ps.Close() }
}

func call(t *testing.T, ts *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rdr)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("X-API-Key", apiKey)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, b
}

func TestEndToEnd_ModerationFlow(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	mux, closeFn := buildStack(t, dir, mr.Addr())
	ts := httptest.NewServer(mux)

	// baseline: nobody approved
	resp, b := call(t, ts, "GET", "/properties/prop-1/metrics", "")
	if resp.StatusCode != 200 {
		t.Fatalf("metrics status %d: %s", resp.StatusCode, b)
	}
	var m domain.PropertyMetrics
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.TotalReviews != 6 || m.ApprovedReviews != 0 {
		t.Fatalf("baseline metrics: %+v", m)
	}

	// approve two prop-1 reviews
	for _, id := range []int{7454, 7460} {
		resp, b = call(t, ts, "PATCH", fmt.Sprintf("/reviews/%d/status", id), `{"status":"approved"}`)
		if resp.StatusCode != 200 {
			t.Fatalf("patch status %d: %s", resp.StatusCode, b)
		}
	}

	resp, b = call(t, ts, "GET", "/properties/prop-1/metrics", "")
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ApprovedReviews != 2 {
		t.Fatalf("approved after moderation: %d, want 2 (%s)", m.ApprovedReviews, b)
	}

	// public listing sees only approved reviews
	resp, b = call(t, ts, "GET", "/reviews/normalized?status=approved&sort=newest", "")
	var reviews []domain.Review
	if err := json.Unmarshal(b, &reviews); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("approved listing %d, want 2", len(reviews))
	}
	if reviews[0].Date < reviews[1].Date {
		t.Fatalf("not newest-first: %s before %s", reviews[0].Date, reviews[1].Date)
	}

	// rejection clears the approval
	resp, b = call(t, ts, "PATCH", "/reviews/7454/status", `{"status":"rejected"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("patch status %d: %s", resp.StatusCode, b)
	}
	resp, b = call(t, ts, "GET", "/properties/prop-1/metrics", "")
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ApprovedReviews != 1 {
		t.Fatalf("approved after reject: %d, want 1", m.ApprovedReviews)
	}

	ts.Close()
	closeFn()

	// approvals survive a full restart on the same overlay dir
	mux2, closeFn2 := buildStack(t, dir, mr.Addr())
	defer closeFn2()
	ts2 := httptest.NewServer(mux2)
	defer ts2.Close()

	_, b = call(t, ts2, "GET", "/properties/prop-1/metrics", "")
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ApprovedReviews != 1 {
		t.Fatalf("approvals lost across restart: %d, want 1", m.ApprovedReviews)
	}
}

func TestEndToEnd_ETagRevalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	mux, closeFn := buildStack(t, t.TempDir(), mr.Addr())
	defer closeFn()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, _ := call(t, ts, "GET", "/reviews", "")
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag on listing")
	}

	req, _ := http.NewRequest("GET", ts.URL+"/reviews", nil)
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("If-None-Match", etag)
	resp2, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("status %d, want 304", resp2.StatusCode)
	}
}
