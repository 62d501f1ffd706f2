//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/pkg/metrics"
	"car-rental-pricing/internal/usecase/queries"
	"car-rental-pricing/internal/usecase/shared"
	sharedmock "car-rental-pricing/tests/mock/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.NewMetrics(reg)
	require.NoError(t, err)
	return m, reg
}

// counterValue reads one labelled counter from the registry.
func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == label && l.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func ratePolicy() pricing.Policy {
	return pricing.Policy{MaxRentalDays: 365}
}

func rateRequest(days int) queries.RateRequest {
	return queries.RateRequest{
		TotalDays:   days,
		DailyRate:   decimal.NewFromInt(100),
		WeeklyRate:  decimal.NewFromInt(600),
		MonthlyRate: decimal.NewFromInt(2000),
	}
}

func TestRateQueries_OptimizeRate(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, reg := newMetrics(t)

		var stored shared.RateKey
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rate.Result{}, false, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key shared.RateKey, res rate.Result) error {
				stored = key
				assert.True(t, decimal.NewFromInt(2500).Equal(res.MinCost))
				return nil
			})

		res, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeRate(ctx, rateRequest(35))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2500).Equal(res.MinCost))
		assert.Equal(t, rate.Decomposition{Months: 1, Days: 5}, res.Decomposition)
		assert.Equal(t, 35, stored.TotalDays)
		assert.Equal(t, 1, stored.Quantity)
		assert.Equal(t, float64(1), counterValue(t, reg, "rental_rate_cache_requests_total", "result", metrics.CacheMiss))
	})

	t.Run("cache hit skips computation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, reg := newMetrics(t)

		cached := rate.Result{MinCost: decimal.NewFromInt(1), Decomposition: rate.Decomposition{Days: 1}}
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true, nil)

		res, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeRate(ctx, rateRequest(35))
		require.NoError(t, err)
		assert.Equal(t, cached, res)
		assert.Equal(t, float64(1), counterValue(t, reg, "rental_rate_cache_requests_total", "result", metrics.CacheHit))
	})

	t.Run("cache faults are bypassed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, reg := newMetrics(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rate.Result{}, false, errors.New("connection refused"))
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		res, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeRate(ctx, rateRequest(44))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3200).Equal(res.MinCost))
		assert.Equal(t, float64(2), counterValue(t, reg, "rental_rate_cache_requests_total", "result", metrics.CacheError))
	})

	t.Run("invalid input never reaches the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)
		q := queries.NewRateQueries(cache, m, ratePolicy())

		_, err := q.OptimizeRate(ctx, rateRequest(0))
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, rate.ErrInvalidDuration)

		req := rateRequest(10)
		req.WeeklyRate = decimal.Zero
		_, err = q.OptimizeRate(ctx, req)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, rate.ErrNonPositiveRate)
	})

	t.Run("rejects durations beyond the rental maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)
		q := queries.NewRateQueries(cache, m, ratePolicy())

		for _, days := range []int{366, 3_000_000, 1 << 50} {
			_, err := q.OptimizeRate(ctx, rateRequest(days))
			require.ErrorIs(t, err, errs.ErrDomainValidation)
			require.ErrorIs(t, err, rental.ErrRentalTooLong)
		}
	})

	t.Run("applies the optimizer ceiling without a policy maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)

		_, err := queries.NewRateQueries(cache, m, pricing.Policy{}).OptimizeRate(ctx, rateRequest(1<<50))
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, rate.ErrDurationTooLong)
	})
}

func TestRateQueries_OptimizeExtraRate(t *testing.T) {
	ctx := context.Background()

	t.Run("scales rates by quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key shared.RateKey) (rate.Result, bool, error) {
				assert.Equal(t, 3, key.Quantity)
				return rate.Result{}, false, nil
			})
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeExtraRate(ctx, rateRequest(10), 3)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2700).Equal(res.MinCost))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)

		_, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeExtraRate(ctx, rateRequest(10), 0)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, rate.ErrInvalidQuantity)
	})

	t.Run("rejects durations beyond the rental maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockRateCache(ctrl)
		m, _ := newMetrics(t)

		_, err := queries.NewRateQueries(cache, m, ratePolicy()).OptimizeExtraRate(ctx, rateRequest(366), 2)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, rental.ErrRentalTooLong)
	})
}

func TestRateKey_String(t *testing.T) {
	card, err := rate.NewCard(decimal.RequireFromString("99.5"), decimal.NewFromInt(600), decimal.NewFromInt(2000))
	require.NoError(t, err)

	key := shared.RateKey{TotalDays: 12, Quantity: 2, Card: card}
	assert.Equal(t, "99.5:600:2000:12:2", key.String())
}
