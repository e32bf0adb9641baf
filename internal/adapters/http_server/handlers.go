package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"daoxanh/internal/adapters/observability"
	"daoxanh/internal/adapters/ratelimit"
	"daoxanh/internal/app"
	"daoxanh/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService

	Limiter        *ratelimit.Store
	AllowedOrigins []string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// public content API (read-only, cacheable)
	s.mux.Get("/v1/accommodations", h.listAccommodations)
	s.mux.Get("/v1/packages/combo", h.listComboPackages)
	s.mux.Get("/v1/packages/day-trip", h.listDayTripPackages)
	s.mux.Get("/v1/posts", h.listPosts)
	s.mux.Get("/v1/posts/{slug}", h.getPost)

	// booking notification endpoint: CORS allow-list and per-IP throttle
	// gate the route before the body is touched
	s.mux.Route("/v1/bookings", func(r chi.Router) {
		r.Options("/notify", Preflight(h.AllowedOrigins))
		r.With(CORS(h.AllowedOrigins), RateLimit(h.Limiter)).Post("/notify", h.notifyBooking)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// ---- booking notification ----

func (h *Handlers) notifyBooking(w http.ResponseWriter, r *http.Request) {
	var sub app.BookingSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		observability.ObserveBooking("invalid")
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Dữ liệu không hợp lệ",
			"details": []string{"request body must be valid JSON"},
		})
		return
	}

	res, err := h.B.Submit(r.Context(), sub)
	if err != nil {
		var ve *app.ValidationError
		if errors.As(err, &ve) {
			observability.ObserveBooking("invalid")
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Dữ liệu không hợp lệ",
				"details": ve.Details,
			})
			return
		}
		observability.ObserveBooking("provider_error")
		log.Error().Err(err).Msg("booking notification dispatch failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	if res.Suppressed {
		// honeypot: indistinguishable from success on the wire
		observability.ObserveBooking("honeypot")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	observability.ObserveBooking("sent")
	body := map[string]any{"success": true, "bookingCode": res.BookingCode}
	if res.ProviderID != "" {
		body["providerResponse"] = map[string]string{"id": res.ProviderID}
	}
	writeJSON(w, http.StatusOK, body)
}

// ---- content reads ----

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

func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
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

func (h *Handlers) listAccommodations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListAccommodations(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to load accommodations")
		return
	}
	writeCachedJSON(w, r, out)
}

func (h *Handlers) listComboPackages(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListComboPackages(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to load combo packages")
		return
	}
	writeCachedJSON(w, r, out)
}

func (h *Handlers) listDayTripPackages(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListDayTripPackages(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to load day-trip packages")
		return
	}
	writeCachedJSON(w, r, out)
}

func (h *Handlers) listPosts(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}
	out, err := h.Q.ListPosts(r.Context(), domain.PageQuery{Limit: limit})
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to load posts")
		return
	}
	writeCachedJSON(w, r, out)
}

func (h *Handlers) getPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := h.Q.GetPost(r.Context(), slug)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "post not found")
		return
	}
	writeCachedJSON(w, r, p)
}
