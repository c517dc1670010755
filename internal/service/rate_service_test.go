package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xrate/internal/provider"
	"xrate/internal/repository"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		want  provider.Date
		valid bool
	}{
		{"2010-06-25", provider.Date{Year: 2010, Month: 6, Day: 25}, true},
		{"2019-06-05", provider.Date{Year: 2019, Month: 6, Day: 5}, true},
		{"2021-02-31", provider.Date{Year: 2021, Month: 2, Day: 31}, true}, // no calendar validation
		{"2010-6-25", provider.Date{}, false},
		{"2010/06/25", provider.Date{}, false},
		{"20100625", provider.Date{}, false},
		{"2010-06-2x", provider.Date{}, false},
		{"", provider.Date{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "1.2", FormatRate(1.2))
	assert.Equal(t, "104", FormatRate(104))
	assert.Equal(t, "+Inf", FormatRate(math.Inf(1)))
	assert.Equal(t, "NaN", FormatRate(math.NaN()))
}

func TestGetRate_Validation(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	tests := []struct {
		name    string
		from    string
		date    string
		errType error
	}{
		{"missing from", "", "2010-06-25", ErrMissingCurrency},
		{"bad date", "USD", "25-06-2010", ErrInvalidDate},
		{"empty date", "USD", "", ErrInvalidDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prov := new(MockProvider)
			svc := NewRateService(prov, nil, sugar)

			_, err := svc.GetRate(context.Background(), tc.from, "EUR", tc.date)
			assert.ErrorIs(t, err, tc.errType)
			prov.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything)
		})
	}
}

func TestGetRate_Success(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	date := provider.Date{Year: 2010, Month: 6, Day: 25}

	t.Run("explicit quote", func(t *testing.T) {
		prov := new(MockProvider)
		prov.On("Rate", mock.Anything, provider.Query{From: "USD", To: "JPY", Date: date}).Return(0.0093, nil).Once()

		svc := NewRateService(prov, nil, sugar)
		res, err := svc.GetRate(context.Background(), "USD", "JPY", "2010-06-25")
		require.NoError(t, err)

		assert.Equal(t, "USD", res.From)
		assert.Equal(t, "JPY", res.To)
		assert.Equal(t, "2010-06-25", res.Date)
		assert.Equal(t, 0.0093, res.Rate)
		assert.Equal(t, "0.0093", res.RateText())
		assert.False(t, res.FetchedAt.IsZero())
		_, err = uuid.Parse(res.ID)
		assert.NoError(t, err)
		prov.AssertExpectations(t)
	})

	t.Run("empty quote defaults to EUR", func(t *testing.T) {
		prov := new(MockProvider)
		prov.On("Rate", mock.Anything, provider.Query{From: "USD", To: "EUR", Date: date}).Return(1.2, nil).Once()

		svc := NewRateService(prov, nil, sugar)
		res, err := svc.GetRate(context.Background(), "USD", "", "2010-06-25")
		require.NoError(t, err)
		assert.Equal(t, "EUR", res.To)
		assert.Equal(t, 1.2, res.Rate)
		prov.AssertExpectations(t)
	})

	t.Run("codes passed through verbatim", func(t *testing.T) {
		prov := new(MockProvider)
		prov.On("Rate", mock.Anything, provider.Query{From: "A B", To: "usd", Date: date}).Return(2.0, nil).Once()

		svc := NewRateService(prov, nil, sugar)
		_, err := svc.GetRate(context.Background(), "A B", "usd", "2010-06-25")
		require.NoError(t, err)
		prov.AssertExpectations(t)
	})
}

func TestGetRate_ProviderErrors(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	kinds := []error{provider.ErrTransport, provider.ErrProtocol, provider.ErrRateNotFound}
	for _, kind := range kinds {
		t.Run(kind.Error(), func(t *testing.T) {
			prov := new(MockProvider)
			cause := &provider.FetchError{Kind: kind, Err: errors.New("boom")}
			prov.On("Rate", mock.Anything, mock.Anything).Return(0.0, cause).Once()

			history := new(MockLookupRepo)
			svc := NewRateService(prov, history, sugar)

			res, err := svc.GetRate(context.Background(), "USD", "EUR", "2010-06-25")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, kind)
			history.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
			prov.AssertNumberOfCalls(t, "Rate", 1)
		})
	}
}

func TestGetRate_History(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("records successful lookups", func(t *testing.T) {
		prov := new(MockProvider)
		prov.On("Rate", mock.Anything, mock.Anything).Return(1.5, nil).Once()

		history := new(MockLookupRepo)
		history.On("Record", mock.Anything, mock.MatchedBy(func(l *repository.Lookup) bool {
			return l.From == "GBP" && l.To == "EUR" && l.Date == "2015-03-09" && l.Rate == 1.5 && l.ID != ""
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*repository.Lookup).CreatedAt = created
		}).Return(nil).Once()

		svc := NewRateService(prov, history, sugar)
		res, err := svc.GetRate(context.Background(), "GBP", "EUR", "2015-03-09")
		require.NoError(t, err)
		assert.Equal(t, created, res.FetchedAt)
		history.AssertExpectations(t)
	})

	t.Run("storage failure does not fail the lookup", func(t *testing.T) {
		prov := new(MockProvider)
		prov.On("Rate", mock.Anything, mock.Anything).Return(1.5, nil).Once()

		history := new(MockLookupRepo)
		history.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		svc := NewRateService(prov, history, sugar)
		res, err := svc.GetRate(context.Background(), "GBP", "EUR", "2015-03-09")
		require.NoError(t, err)
		assert.Equal(t, 1.5, res.Rate)
		history.AssertExpectations(t)
	})
}

func TestRecentLookups(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	t.Run("disabled", func(t *testing.T) {
		svc := NewRateService(new(MockProvider), nil, sugar)
		assert.False(t, svc.HistoryEnabled())

		_, err := svc.RecentLookups(context.Background(), 10)
		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})

	limits := []struct {
		in, want int
	}{
		{0, defaultHistoryLimit},
		{-5, defaultHistoryLimit},
		{7, 7},
		{1000, maxHistoryLimit},
	}
	for _, tc := range limits {
		t.Run(fmt.Sprintf("limit %d", tc.in), func(t *testing.T) {
			history := new(MockLookupRepo)
			history.On("ListRecent", mock.Anything, tc.want).Return([]*repository.Lookup{
				{ID: "id-1", From: "USD", To: "EUR", Date: "2010-06-25", Rate: 1.2},
			}, nil).Once()

			svc := NewRateService(new(MockProvider), history, sugar)
			assert.True(t, svc.HistoryEnabled())

			got, err := svc.RecentLookups(context.Background(), tc.in)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "id-1", got[0].ID)
			assert.Equal(t, 1.2, got[0].Rate)
			history.AssertExpectations(t)
		})
	}

	t.Run("db error", func(t *testing.T) {
		history := new(MockLookupRepo)
		history.On("ListRecent", mock.Anything, defaultHistoryLimit).Return(nil, errors.New("db down")).Once()

		svc := NewRateService(new(MockProvider), history, sugar)
		_, err := svc.RecentLookups(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
