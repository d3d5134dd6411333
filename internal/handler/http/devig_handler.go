package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-devig-service/internal/service"
	"github.com/cypherlabdev/odds-devig-service/pkg/odds"
)

// DevigHandler handles HTTP requests for devigged markets
type DevigHandler struct {
	service *service.DevigService
	logger  zerolog.Logger
}

// NewDevigHandler creates a new devig HTTP handler
func NewDevigHandler(service *service.DevigService, logger zerolog.Logger) *DevigHandler {
	return &DevigHandler{
		service: service,
		logger:  logger.With().Str("component", "devig_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *DevigHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/devig/:event_id/:market/:book - Get cached fair prices
	// POST /api/v1/devig - Devig an ad-hoc market
	mux.HandleFunc("/api/v1/devig", h.handleDevigMarket)
	mux.HandleFunc("/api/v1/devig/", h.handleGetDevigResult)

	// GET /api/v1/events/:event_id/devig - Get all fair prices for an event
	mux.HandleFunc("/api/v1/events/", h.handleGetEventResults)

	// GET /api/v1/convert - Convert a single price between odds formats
	mux.HandleFunc("/api/v1/convert", h.handleConvert)
}

// handleGetDevigResult handles GET /api/v1/devig/:event_id/:market/:book
func (h *DevigHandler) handleGetDevigResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/devig/:event_id/:market/:book
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/devig/")
	parts := strings.Split(path, "/")

	if len(parts) != 3 {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/devig/:event_id/:market/:book")
		return
	}

	eventID := parts[0]
	market := parts[1]
	book := parts[2]

	if eventID == "" || market == "" || book == "" {
		h.errorResponse(w, http.StatusBadRequest, "event_id, market, and book are required")
		return
	}

	// Get fair prices from service
	result, err := h.service.GetDevigResult(r.Context(), eventID, market, book)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("event_id", eventID).
			Str("market", market).
			Str("book", book).
			Msg("devig result not found")
		h.errorResponse(w, http.StatusNotFound, "devig result not found")
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}

// DevigMarketRequest is the body of POST /api/v1/devig
type DevigMarketRequest struct {
	AmericanOdds []int  `json:"american_odds"`
	Method       string `json:"method"`
}

// DevigMarketResponse is the response of POST /api/v1/devig
type DevigMarketResponse struct {
	Method     string  `json:"method"`
	VigPercent float64 `json:"vig_percent"`
	FairOdds   []int   `json:"fair_odds"`
}

// handleDevigMarket handles POST /api/v1/devig
func (h *DevigHandler) handleDevigMarket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req DevigMarketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	methodName := req.Method
	if methodName == "" {
		methodName = "additive"
	}

	method, err := odds.ParseMethod(methodName)
	if err != nil {
		h.oddsErrorResponse(w, err)
		return
	}

	vigPercent, fairOdds, err := odds.DevigNWay(req.AmericanOdds, method)
	if err != nil {
		h.oddsErrorResponse(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, DevigMarketResponse{
		Method:     method.String(),
		VigPercent: vigPercent,
		FairOdds:   fairOdds,
	})
}

// handleGetEventResults handles GET /api/v1/events/:event_id/devig
func (h *DevigHandler) handleGetEventResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/events/:event_id/devig
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "devig" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/events/:event_id/devig")
		return
	}

	eventID := parts[0]
	if eventID == "" {
		h.errorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	// Get all fair prices for event from service
	results, err := h.service.GetDevigResultsByEvent(r.Context(), eventID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event_id", eventID).
			Msg("failed to retrieve event devig results")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve devig results")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"event_id": eventID,
		"count":    len(results),
		"results":  results,
	})
}

// jsonResponse writes a JSON response
func (h *DevigHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *DevigHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// oddsErrorResponse maps odds-layer error kinds to HTTP status codes
func (h *DevigHandler) oddsErrorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, odds.ErrUnsupportedMethod):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, odds.ErrInvalidOdds):
		status = http.StatusBadRequest
	}

	h.errorResponse(w, status, err.Error())
}
