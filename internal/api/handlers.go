package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"xrate/internal/provider"
	"xrate/internal/service"
)

// RateResponse represents a computed cross-rate
type RateResponse struct {
	From string `json:"from" example:"USD"`
	To   string `json:"to" example:"EUR"`
	Date string `json:"date" example:"2010-06-25"`
	Rate string `json:"rate" example:"0.8137"`
}

// LookupResponse represents one recorded lookup
type LookupResponse struct {
	ID        string `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	From      string `json:"from" example:"USD"`
	To        string `json:"to" example:"EUR"`
	Date      string `json:"date" example:"2010-06-25"`
	Rate      string `json:"rate" example:"0.8137"`
	FetchedAt string `json:"fetched_at" example:"2025-12-01T10:15:30Z"`
}

// HandleGetRate godoc
// @Summary Get historical cross-rate
// @Description Fetches the provider's rates for the given day and returns rate(from) / rate(to). The target currency defaults to EUR. Codes are forwarded without validation.
// @Tags rates
// @Produce json
// @Param date path string true "Day in YYYY-MM-DD form" example(2010-06-25)
// @Param from query string true "Currency to convert from" example(USD)
// @Param to query string false "Currency to convert to (default EUR)" example(JPY)
// @Success 200 {object} RateResponse "Rate computed"
// @Failure 400 {object} ErrorResponse "Invalid date or missing currency"
// @Failure 404 {object} ErrorResponse "Currency not present in provider response"
// @Failure 502 {object} ErrorResponse "Provider unreachable or returned an unusable response"
// @Router /rates/{date} [get]
func HandleGetRate(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from query param is required"})
			return
		}
		serveRate(w, r, svc, from, to)
	}
}

// HandleGetEuroRate godoc
// @Summary Get historical rate against the euro
// @Description Shorthand for /rates/{date}?from={code}&to=EUR.
// @Tags rates
// @Produce json
// @Param date path string true "Day in YYYY-MM-DD form" example(2010-06-25)
// @Param code path string true "Currency code" example(USD)
// @Success 200 {object} RateResponse "Rate computed"
// @Failure 400 {object} ErrorResponse "Invalid date or code escape"
// @Failure 404 {object} ErrorResponse "Currency not present in provider response"
// @Failure 502 {object} ErrorResponse "Provider unreachable or returned an unusable response"
// @Router /rates/{date}/{code} [get]
func HandleGetEuroRate(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi matches on RawPath when present, so an escaped code arrives still escaped.
		code, err := url.PathUnescape(chi.URLParam(r, "code"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid currency code escape"})
			return
		}
		serveRate(w, r, svc, code, provider.DefaultQuoteCurrency)
	}
}

func serveRate(w http.ResponseWriter, r *http.Request, svc service.RateServiceInterface, from, to string) {
	res, err := svc.GetRate(r.Context(), from, to, chi.URLParam(r, "date"))
	if err != nil {
		writeRateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RateResponse{
		From: res.From,
		To:   res.To,
		Date: res.Date,
		Rate: res.RateText(),
	})
}

func writeRateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrMissingCurrency):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, provider.ErrRateNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, provider.ErrTransport):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Rate provider unavailable"})
	case errors.Is(err, provider.ErrProtocol):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Rate provider returned an invalid response"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

// HandleListLookups godoc
// @Summary List recent lookups
// @Description Returns the most recently computed rates, newest first. Only available when lookup history is enabled.
// @Tags lookups
// @Produce json
// @Param limit query int false "Maximum number of entries (1-100, default 20)"
// @Success 200 {array} LookupResponse "Recent lookups"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 404 {object} ErrorResponse "Lookup history disabled"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /lookups [get]
func HandleListLookups(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
				return
			}
			limit = n
		}

		lookups, err := svc.RecentLookups(r.Context(), limit)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrHistoryDisabled):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			default:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			}
			return
		}

		resp := make([]LookupResponse, 0, len(lookups))
		for _, l := range lookups {
			resp = append(resp, LookupResponse{
				ID:        l.ID,
				From:      l.From,
				To:        l.To,
				Date:      l.Date,
				Rate:      l.RateText(),
				FetchedAt: l.FetchedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
