package service

import (
	"time"

	"xrate/internal/repository"
)

// RateResult represents a computed cross-rate returned by the service layer.
type RateResult struct {
	ID        string
	From      string
	To        string
	Date      string
	Rate      float64
	FetchedAt time.Time
}

// RateText is Rate formatted with FormatRate.
func (r *RateResult) RateText() string {
	return FormatRate(r.Rate)
}

func rateResultFromLookup(l *repository.Lookup) *RateResult {
	return &RateResult{
		ID:        l.ID,
		From:      l.From,
		To:        l.To,
		Date:      l.Date,
		Rate:      l.Rate,
		FetchedAt: l.CreatedAt,
	}
}
