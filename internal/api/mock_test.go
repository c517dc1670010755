package api

import (
	"context"

	"xrate/internal/service"
)

// mockRateService implements service.RateServiceInterface for testing.
type mockRateService struct {
	getRateFunc       func(ctx context.Context, from, to, date string) (*service.RateResult, error)
	recentLookupsFunc func(ctx context.Context, limit int) ([]*service.RateResult, error)
	historyEnabled    bool
}

func (m *mockRateService) GetRate(ctx context.Context, from, to, date string) (*service.RateResult, error) {
	return m.getRateFunc(ctx, from, to, date)
}

func (m *mockRateService) RecentLookups(ctx context.Context, limit int) ([]*service.RateResult, error) {
	return m.recentLookupsFunc(ctx, limit)
}

func (m *mockRateService) HistoryEnabled() bool {
	return m.historyEnabled
}
