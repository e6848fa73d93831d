package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

const (
	dateLayout   = "2006-01-02"
	maxBodyBytes = 1 << 20
)

var errMalformedBody = errors.New("malformed JSON body")

type Handlers struct{ P *app.PlannerService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Post("/places/{id}/score", h.scorePlace)
		r.Post("/places/{id}/explain", h.explainPlace)
		r.Post("/rankings", h.rankPlaces)
		r.Post("/itineraries", h.createItinerary)
		r.Get("/itineraries/{id}", h.getItinerary)
		r.Put("/itineraries/{id}/accommodation", h.selectAccommodation)
	})
}

// preferencesRequest is the wire shape of Preferences; dates are YYYY-MM-DD.
type preferencesRequest struct {
	StartCity         domain.StartCity `json:"startCity"`
	StartDate         string           `json:"startDate"`
	EndDate           string           `json:"endDate"`
	MaxBudget         float64          `json:"maxBudget"`
	Interests         []string         `json:"interests"`
	Priority          string           `json:"priority"`
	TravelType        string           `json:"travelType"`
	LodgingPreference string           `json:"lodgingPreference"`
	SeasonMode        string           `json:"seasonMode"`
	SeasonTolerance   string           `json:"seasonTolerance"`
}

func (p preferencesRequest) toDomain() (domain.Preferences, error) {
	out := domain.Preferences{
		StartCity:         p.StartCity,
		MaxBudget:         p.MaxBudget,
		Interests:         p.Interests,
		Priority:          domain.Priority(strings.ToLower(p.Priority)),
		TravelType:        domain.TravelType(strings.ToLower(p.TravelType)),
		LodgingPreference: p.LodgingPreference,
		SeasonMode:        domain.SeasonMode(strings.ToLower(p.SeasonMode)),
		SeasonTolerance:   domain.SeasonTolerance(strings.ToLower(p.SeasonTolerance)),
	}
	var err error
	if out.StartDate, err = parseDate("startDate", p.StartDate); err != nil {
		return out, err
	}
	if out.EndDate, err = parseDate("endDate", p.EndDate); err != nil {
		return out, err
	}
	return out, nil
}

// parseDate leaves an empty value zero so validation reports it as missing.
func parseDate(field, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidPreferences, field)
	}
	return t, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return errMalformedBody
	}
	return nil
}

func decodePreferences(w http.ResponseWriter, r *http.Request) (domain.Preferences, error) {
	var req preferencesRequest
	if err := decodeBody(w, r, &req); err != nil {
		return domain.Preferences{}, err
	}
	return req.toDomain()
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errMalformedBody):
		writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrInvalidPreferences):
		writeProblem(w, http.StatusBadRequest, "Invalid preferences", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write response body failed")
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
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

type scoreResponse struct {
	PlaceID  string               `json:"placeId"`
	Score    float64              `json:"score"`
	Category domain.PlaceCategory `json:"category"`
}

func (h *Handlers) scorePlace(w http.ResponseWriter, r *http.Request) {
	prefs, err := decodePreferences(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sp, err := h.P.Score(r.Context(), chi.URLParam(r, "id"), prefs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{PlaceID: sp.ID, Score: sp.Score, Category: sp.Category})
}

func (h *Handlers) explainPlace(w http.ResponseWriter, r *http.Request) {
	prefs, err := decodePreferences(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	br, err := h.P.Explain(r.Context(), chi.URLParam(r, "id"), prefs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, br)
}

func (h *Handlers) rankPlaces(w http.ResponseWriter, r *http.Request) {
	prefs, err := decodePreferences(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ranked, err := h.P.RankPlaces(r.Context(), prefs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *Handlers) createItinerary(w http.ResponseWriter, r *http.Request) {
	prefs, err := decodePreferences(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sp, err := h.P.BuildItinerary(r.Context(), prefs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/itineraries/"+sp.ID)
	writeJSON(w, http.StatusCreated, sp)
}

func (h *Handlers) getItinerary(w http.ResponseWriter, r *http.Request) {
	plan, err := h.P.GetItinerary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	etag, body := calcETagAndBody(plan)
	// client already has this version
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getItinerary body")
	}
}

type accommodationRequest struct {
	PlaceID string `json:"placeId"`
}

func (h *Handlers) selectAccommodation(w http.ResponseWriter, r *http.Request) {
	var req accommodationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.PlaceID) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "placeId is required")
		return
	}
	plan, err := h.P.SelectAccommodation(r.Context(), chi.URLParam(r, "id"), req.PlaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
