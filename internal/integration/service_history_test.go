//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xrate/internal/provider"
	"xrate/internal/repository"
	"xrate/internal/service"
)

// fakeProvider implements provider.RatesProvider with a fixed rate.
type fakeProvider struct {
	rate float64
}

func (f *fakeProvider) Rate(_ context.Context, _ provider.Query) (float64, error) {
	return f.rate, nil
}

var _ provider.RatesProvider = (*fakeProvider)(nil)

func TestRateService_RecordsAndListsLookups(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	repo := repository.NewPostgresLookupRepository(testDB)
	svc := service.NewRateService(&fakeProvider{rate: 1.0850}, repo, zap.NewNop().Sugar())

	res, err := svc.GetRate(ctx, "USD", "", "2019-06-05")
	require.NoError(t, err)
	assert.Equal(t, "EUR", res.To)

	recent, err := svc.RecentLookups(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, res.ID, recent[0].ID)
	assert.Equal(t, "2019-06-05", recent[0].Date)
	assert.Equal(t, 1.0850, recent[0].Rate)
	assert.Equal(t, res.FetchedAt.UTC(), recent[0].FetchedAt.UTC())
}
