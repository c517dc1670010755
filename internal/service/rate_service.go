// Package service implements the application logic around historical cross-rate lookups.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xrate/internal/provider"
	"xrate/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// RateServiceInterface defines the operations available for rate lookups.
type RateServiceInterface interface {
	GetRate(ctx context.Context, from, to, date string) (*RateResult, error)
	RecentLookups(ctx context.Context, limit int) ([]*RateResult, error)
	HistoryEnabled() bool
}

// RateService resolves cross-rates through a provider and optionally records them.
type RateService struct {
	provider provider.RatesProvider
	history  repository.LookupRepository
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewRateService creates a new RateService. history may be nil to disable lookup recording.
func NewRateService(prov provider.RatesProvider, history repository.LookupRepository, logger *zap.SugaredLogger) *RateService {
	return &RateService{
		provider: prov,
		history:  history,
		log:      logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HistoryEnabled reports whether lookups are being recorded.
func (s *RateService) HistoryEnabled() bool {
	return s.history != nil
}

// GetRate returns the rate of from against to (EUR when empty) on date.
// Provider failures are returned wrapped and still match the provider error kinds.
func (s *RateService) GetRate(ctx context.Context, from, to, date string) (*RateResult, error) {
	if from == "" {
		return nil, ErrMissingCurrency
	}
	if to == "" {
		to = provider.DefaultQuoteCurrency
	}
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	rate, err := s.provider.Rate(ctx, provider.Query{From: from, To: to, Date: d})
	if err != nil {
		s.logProviderError(from, to, date, err)
		return nil, fmt.Errorf("rate %s/%s on %s: %w", from, to, date, err)
	}

	res := &RateResult{
		ID:        uuid.New().String(),
		From:      from,
		To:        to,
		Date:      d.String(),
		Rate:      rate,
		FetchedAt: s.now(),
	}
	s.record(ctx, res)

	s.log.Infow("Rate resolved", "from", from, "to", to, "date", res.Date, "rate", res.RateText())
	return res, nil
}

// RecentLookups returns the newest recorded lookups. limit is clamped to [1, 100];
// zero or negative selects the default of 20.
func (s *RateService) RecentLookups(ctx context.Context, limit int) ([]*RateResult, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	lookups, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		s.log.Errorw("DB error listing lookups", "limit", limit, "error", err)
		return nil, ErrInternal
	}

	out := make([]*RateResult, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, rateResultFromLookup(l))
	}
	return out, nil
}

func (s *RateService) record(ctx context.Context, res *RateResult) {
	if s.history == nil {
		return
	}
	l := &repository.Lookup{
		ID:   res.ID,
		From: res.From,
		To:   res.To,
		Date: res.Date,
		Rate: res.Rate,
	}
	if err := s.history.Record(ctx, l); err != nil {
		s.log.Warnw("Failed to record lookup", "id", res.ID, "error", err)
		return
	}
	if !l.CreatedAt.IsZero() {
		res.FetchedAt = l.CreatedAt
	}
}

func (s *RateService) logProviderError(from, to, date string, err error) {
	if errors.Is(err, provider.ErrRateNotFound) {
		s.log.Warnw("Currency missing from provider response", "from", from, "to", to, "date", date, "error", err)
		return
	}
	s.log.Errorw("Provider error", "from", from, "to", to, "date", date, "error", err)
}
