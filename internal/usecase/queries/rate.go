package queries

import (
	"context"
	"log/slog"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/pkg/metrics"
	"car-rental-pricing/internal/usecase/shared"
)

type RateQueries interface {
	OptimizeRate(ctx context.Context, req RateRequest) (rate.Result, error)
	OptimizeExtraRate(ctx context.Context, req RateRequest, quantity int) (rate.Result, error)
	// Optimize serves the pricing pipeline with an already validated card.
	Optimize(ctx context.Context, totalDays int, card rate.Card) (rate.Result, error)
}

type rateQueriesImpl struct {
	cache   shared.RateCache
	metrics *metrics.Metrics
	maxDays int
}

// NewRateQueries bounds totalDays by the policy's rental maximum.
func NewRateQueries(cache shared.RateCache, m *metrics.Metrics, policy pricing.Policy) RateQueries {
	return &rateQueriesImpl{cache: cache, metrics: m, maxDays: policy.MaxRentalDays}
}

func (q *rateQueriesImpl) OptimizeRate(ctx context.Context, req RateRequest) (rate.Result, error) {
	card, err := rate.NewCard(req.DailyRate, req.WeeklyRate, req.MonthlyRate)
	if err != nil {
		return rate.Result{}, markDomainErr(err)
	}
	return q.Optimize(ctx, req.TotalDays, card)
}

func (q *rateQueriesImpl) OptimizeExtraRate(ctx context.Context, req RateRequest, quantity int) (rate.Result, error) {
	card, err := rate.NewCard(req.DailyRate, req.WeeklyRate, req.MonthlyRate)
	if err != nil {
		return rate.Result{}, markDomainErr(err)
	}
	if quantity <= 0 {
		return rate.Result{}, markDomainErr(rate.ErrInvalidQuantity)
	}
	return q.cached(ctx, shared.RateKey{TotalDays: req.TotalDays, Quantity: quantity, Card: card}, func() (rate.Result, error) {
		return rate.OptimizeExtra(req.TotalDays, card, quantity)
	})
}

func (q *rateQueriesImpl) Optimize(ctx context.Context, totalDays int, card rate.Card) (rate.Result, error) {
	return q.cached(ctx, shared.RateKey{TotalDays: totalDays, Quantity: 1, Card: card}, func() (rate.Result, error) {
		return rate.Optimize(totalDays, card)
	})
}

// cached consults the rate cache around compute. Cache faults are logged and bypassed.
func (q *rateQueriesImpl) cached(ctx context.Context, key shared.RateKey, compute func() (rate.Result, error)) (rate.Result, error) {
	if key.TotalDays <= 0 {
		return rate.Result{}, markDomainErr(rate.ErrInvalidDuration)
	}
	if q.maxDays > 0 && key.TotalDays > q.maxDays {
		return rate.Result{}, markDomainErr(errs.Mark(
			errs.Newf("totalDays %d exceeds the maximum of %d", key.TotalDays, q.maxDays),
			rental.ErrRentalTooLong))
	}
	if key.TotalDays > rate.MaxTotalDays {
		return rate.Result{}, markDomainErr(rate.ErrDurationTooLong)
	}

	res, found, err := q.cache.Get(ctx, key)
	switch {
	case err != nil:
		q.metrics.RateCache(metrics.CacheError)
		slog.WarnContext(ctx, "rate cache lookup failed, computing directly",
			"key", key.String(),
			"error", err.Error())
	case found:
		q.metrics.RateCache(metrics.CacheHit)
		return res, nil
	default:
		q.metrics.RateCache(metrics.CacheMiss)
	}

	res, err = compute()
	if err != nil {
		return rate.Result{}, markDomainErr(errs.Wrap(err, "failed to optimize rate"))
	}

	if err := q.cache.Set(ctx, key, res); err != nil {
		q.metrics.RateCache(metrics.CacheError)
		slog.WarnContext(ctx, "rate cache store failed",
			"key", key.String(),
			"error", err.Error())
	}
	return res, nil
}
