package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/app"
	"github.com/shesheerrao0606/TheFelxDashboard/internal/domain"
)

const (
	serviceName    = "Flex Reviews API"
	serviceVersion = "1.0.0"
)

type Handlers struct {
	Q *app.QueryService
	M *app.ModerationService
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// reviewsEnvelope is the Hostaway-compatible listing wrapper.
type reviewsEnvelope struct {
	Status string             `json:"status"`
	Result []domain.RawReview `json:"result"`
}

func (s *Server) MountHandlers(h *Handlers, apiKeys []string) {
	s.mux.Get("/health", h.health)
	s.mux.Group(func(r chi.Router) {
		r.Use(APIKey(apiKeys))
		r.Get("/reviews", h.listReviews)
		r.Get("/reviews/normalized", h.searchReviews)
		r.Get("/reviews/{id}", h.getReview)
		r.Patch("/reviews/{id}/status", h.updateStatus)
		r.Get("/properties", h.listProperties)
		r.Get("/properties/metrics", h.allMetrics)
		r.Get("/properties/{id}/metrics", h.propertyMetrics)
	})
	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found", "")
	})
}

func writeError(w http.ResponseWriter, status int, errMsg, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiError{Error: errMsg, Message: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Q.ListRaw(r.Context(), r.URL.Query().Get("property"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "Upstream error", err.Error())
		return
	}
	writeWithETag(w, r, reviewsEnvelope{Status: "success", Result: reviews})
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Review not found", "")
		return
	}
	rv, err := h.Q.GetRaw(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Review not found", "")
			return
		}
		writeError(w, http.StatusBadGateway, "Upstream error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

// searchReviews exposes the canonical query layer: normalized reviews with
// overlay-merged statuses, filterable and sortable.
func (h *Handlers) searchReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := domain.Criteria{
		Property: q.Get("property"),
		Channel:  q.Get("channel"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
	}
	if rs := q.Get("rating"); rs != "" {
		n, err := strconv.Atoi(rs)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid rating", "rating must be an integer")
			return
		}
		c.Rating = &n
	}
	reviews, err := h.Q.Search(r.Context(), c, q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "Upstream error", err.Error())
		return
	}
	writeWithETag(w, r, reviews)
}

func (h *Handlers) listProperties(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Catalog())
}

func (h *Handlers) propertyMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.Q.PropertyMetrics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "Upstream error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) allMetrics(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Q.AllMetrics(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "Upstream error", err.Error())
		return
	}
	writeWithETag(w, r, ms)
}

func (h *Handlers) updateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusNotFound, "Review not found", "")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status",
			"Status must be approved, rejected, or pending")
		return
	}
	if err := h.M.SetStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "Invalid status",
				"Status must be approved, rejected, or pending")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Review status updated to " + body.Status,
		"reviewId":  idStr,
		"newStatus": body.Status,
	})
}
