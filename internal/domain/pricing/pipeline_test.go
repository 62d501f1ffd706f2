//go:build unit

package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-pricing/internal/domain/car"
	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/promo"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/pkg/clock"
	"car-rental-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now      = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	decEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
)

type gateFunc func(ctx context.Context, carID uuid.UUID, interval rental.Interval, exclude *uuid.UUID) (bool, error)

func (f gateFunc) IsAvailable(ctx context.Context, carID uuid.UUID, interval rental.Interval, exclude *uuid.UUID) (bool, error) {
	return f(ctx, carID, interval, exclude)
}

func alwaysAvailable() pricing.AvailabilityGate {
	return gateFunc(func(context.Context, uuid.UUID, rental.Interval, *uuid.UUID) (bool, error) {
		return true, nil
	})
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func defaultPolicy() pricing.Policy {
	return pricing.Policy{
		TaxPercent:       d("10"),
		InsurancePercent: d("5"),
		DeliveryFee:      d("50"),
		LongDurationTiers: []pricing.LongDurationTier{
			{MinDays: 7, Percent: d("5")},
			{MinDays: 30, Percent: d("15")},
		},
		LoyaltyPointValue:           d("0.01"),
		LoyaltyMaxRedemptionPercent: d("50"),
		LoyaltyPointsPerUnit:        d("1"),
		BaseCostStrategy:            pricing.StrategyOptimized,
		MaxRentalDays:               365,
	}
}

func newCar(t *testing.T, status car.Status) *car.Car {
	t.Helper()
	c, err := builder.NewCarBuilder().With(func(b *builder.CarBuilder) { b.Status = status }).BuildDomain()
	require.NoError(t, err)
	return c
}

func maintenanceCar(t *testing.T) *car.Car {
	t.Helper()
	c, err := builder.NewCarBuilder().InMaintenance().BuildDomain()
	require.NoError(t, err)
	return c
}

func newInterval(t *testing.T, days int) rental.Interval {
	t.Helper()
	start := now.Add(48 * time.Hour)
	iv, err := rental.NewInterval(start, start.Add(time.Duration(days)*24*time.Hour))
	require.NoError(t, err)
	return iv
}

func newPipeline(t *testing.T, policy pricing.Policy, gate pricing.AvailabilityGate) *pricing.Pipeline {
	t.Helper()
	p, err := pricing.NewPipeline(policy, gate, nil, clock.NewMockClock(now))
	require.NoError(t, err)
	return p
}

func TestPipeline_Quote_FullBreakdown(t *testing.T) {
	c := newCar(t, car.StatusActive)
	gps, seat := uuid.New(), uuid.New()
	promoCode, err := promo.NewPromo(uuid.New(), "SPRING100", dp("100"), nil, nil, nil)
	require.NoError(t, err)

	p := newPipeline(t, defaultPolicy(), alwaysAvailable())

	res, err := p.Quote(context.Background(), pricing.Input{
		Car:            c,
		Interval:       newInterval(t, 35),
		PickupBranchID: uuid.New(),
		ReturnBranchID: uuid.New(),
		Extras: []pricing.ExtraSelection{
			{ExtraID: gps, Name: "GPS", UnitDailyPrice: d("10"), Quantity: 1},
			{ExtraID: seat, Name: "Child seat", UnitDailyPrice: d("5"), Quantity: 2},
		},
		Promo:                  promoCode,
		LoyaltyPointsToRedeem:  10000,
		LoyaltyPointsAvailable: 8000,
	})
	require.NoError(t, err)
	require.True(t, res.Available)

	want := &pricing.CostBreakdown{
		TotalDays:        35,
		BaseCostStrategy: pricing.StrategyOptimized,
		BaseCost:         d("2500"),
		Decomposition:    &rate.Decomposition{Months: 1, Days: 5},
		Extras: []pricing.ExtraLineItem{
			{ExtraID: gps, Name: "GPS", UnitDailyPrice: d("10"), Quantity: 1, TotalCost: d("350")},
			{ExtraID: seat, Name: "Child seat", UnitDailyPrice: d("5"), Quantity: 2, TotalCost: d("350")},
		},
		ExtrasTotal:  d("700"),
		DeliveryFee:  d("50"),
		InsuranceFee: d("125"),
		Subtotal:     d("3375"),
		Discounts: []pricing.DiscountEntry{
			{Kind: pricing.DiscountLongDuration, Percentage: dp("15"), Amount: d("506.25"), Description: "15% off for rentals of 30 days or more"},
			{Kind: pricing.DiscountPromoCode, Amount: d("100"), Description: "promo code SPRING100"},
			{Kind: pricing.DiscountLoyaltyPoints, Amount: d("80"), Description: "8000 loyalty points redeemed"},
		},
		TotalDiscount: d("686.25"),
		LoyaltyRedemption: &pricing.LoyaltyRedemption{
			PointsRequested:      10000,
			PointsAvailable:      8000,
			PointsApplied:        8000,
			PointValue:           d("0.01"),
			MaxRedemptionPercent: d("50"),
			DiscountValue:        d("80"),
		},
		TotalAfterDiscounts: d("2688.75"),
		TaxRate:             d("10"),
		TaxAmount:           d("268.88"),
		FinalAmount:         d("2957.63"),
		LoyaltyPointsEarned: 2957,
	}

	if diff := cmp.Diff(want, res.Breakdown, decEqual); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_Quote_Availability(t *testing.T) {
	t.Run("booked car short-circuits with a reason", func(t *testing.T) {
		var gotExclude *uuid.UUID
		gate := gateFunc(func(_ context.Context, _ uuid.UUID, _ rental.Interval, exclude *uuid.UUID) (bool, error) {
			gotExclude = exclude
			return false, nil
		})
		p := newPipeline(t, defaultPolicy(), gate)
		exclude := uuid.New()

		res, err := p.Quote(context.Background(), pricing.Input{
			Car:                   newCar(t, car.StatusActive),
			Interval:              newInterval(t, 3),
			ExcludeBookingID:      &exclude,
			LoyaltyPointsToRedeem: 100,
		})
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, pricing.ReasonCarBooked, res.Reason)
		assert.Nil(t, res.Breakdown)
		require.NotNil(t, gotExclude)
		assert.Equal(t, exclude, *gotExclude)
	})

	t.Run("car in maintenance is not quoted", func(t *testing.T) {
		called := false
		gate := gateFunc(func(context.Context, uuid.UUID, rental.Interval, *uuid.UUID) (bool, error) {
			called = true
			return true, nil
		})
		p := newPipeline(t, defaultPolicy(), gate)

		res, err := p.Quote(context.Background(), pricing.Input{
			Car:      maintenanceCar(t),
			Interval: newInterval(t, 3),
		})
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Contains(t, res.Reason, pricing.ReasonCarNotRentable)
		assert.Nil(t, res.Breakdown)
		assert.False(t, called)
	})

	t.Run("gate failure is returned", func(t *testing.T) {
		boom := errors.New("db down")
		gate := gateFunc(func(context.Context, uuid.UUID, rental.Interval, *uuid.UUID) (bool, error) {
			return false, boom
		})
		p := newPipeline(t, defaultPolicy(), gate)

		_, err := p.Quote(context.Background(), pricing.Input{
			Car:      newCar(t, car.StatusActive),
			Interval: newInterval(t, 3),
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("booked car wins over an expired promo", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		stale, err := promo.NewPromo(uuid.New(), "OLD10", nil, dp("10"), nil, &expired)
		require.NoError(t, err)
		gate := gateFunc(func(context.Context, uuid.UUID, rental.Interval, *uuid.UUID) (bool, error) {
			return false, nil
		})
		p := newPipeline(t, defaultPolicy(), gate)

		res, err := p.Quote(context.Background(), pricing.Input{
			Car:      newCar(t, car.StatusActive),
			Interval: newInterval(t, 3),
			Promo:    stale,
		})
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, pricing.ReasonCarBooked, res.Reason)
	})

	t.Run("nil gate must be bound before quoting", func(t *testing.T) {
		p := newPipeline(t, defaultPolicy(), nil)
		in := pricing.Input{
			Car:      newCar(t, car.StatusActive),
			Interval: newInterval(t, 3),
		}

		_, err := p.Quote(context.Background(), in)
		require.ErrorIs(t, err, pricing.ErrMissingGate)

		res, err := p.WithGate(alwaysAvailable()).Quote(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Available)
	})
}

func TestPipeline_CheckAvailability(t *testing.T) {
	iv := newInterval(t, 3)
	p := newPipeline(t, defaultPolicy(), alwaysAvailable())

	res, ok, err := p.CheckAvailability(context.Background(), newCar(t, car.StatusActive), iv, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, res.Breakdown)

	res, ok, err = p.CheckAvailability(context.Background(), maintenanceCar(t), iv, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, res.Available)
	assert.Contains(t, res.Reason, pricing.ReasonCarNotRentable)

	_, _, err = p.CheckAvailability(context.Background(), nil, iv, nil)
	require.ErrorIs(t, err, pricing.ErrMissingCar)
}

func TestPipeline_Quote_BaseCostStrategy(t *testing.T) {
	testCases := []struct {
		name      string
		policy    pricing.Strategy
		override  pricing.Strategy
		wantBase  string
		wantDecom *rate.Decomposition
	}{
		{name: "policy optimized", policy: pricing.StrategyOptimized, wantBase: "2500", wantDecom: &rate.Decomposition{Months: 1, Days: 5}},
		{name: "policy flat", policy: pricing.StrategyFlat, wantBase: "3500"},
		{name: "override to flat", policy: pricing.StrategyOptimized, override: pricing.StrategyFlat, wantBase: "3500"},
		{name: "override to optimized", policy: pricing.StrategyFlat, override: pricing.StrategyOptimized, wantBase: "2500", wantDecom: &rate.Decomposition{Months: 1, Days: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			policy := defaultPolicy()
			policy.BaseCostStrategy = tc.policy
			p := newPipeline(t, policy, alwaysAvailable())

			res, err := p.Quote(context.Background(), pricing.Input{
				Car:      newCar(t, car.StatusActive),
				Interval: newInterval(t, 35),
				Strategy: tc.override,
			})
			require.NoError(t, err)
			require.NotNil(t, res.Breakdown)
			assert.True(t, d(tc.wantBase).Equal(res.Breakdown.BaseCost), "base %s", res.Breakdown.BaseCost)
			assert.Equal(t, tc.wantDecom, res.Breakdown.Decomposition)
		})
	}
}

func TestPipeline_Quote_Fees(t *testing.T) {
	branch := uuid.New()
	p := newPipeline(t, defaultPolicy(), alwaysAvailable())

	res, err := p.Quote(context.Background(), pricing.Input{
		Car:            newCar(t, car.StatusActive),
		Interval:       newInterval(t, 1),
		PickupBranchID: branch,
		ReturnBranchID: branch,
	})
	require.NoError(t, err)

	b := res.Breakdown
	assert.True(t, b.DeliveryFee.IsZero(), "same branch must not charge delivery")
	assert.True(t, d("5").Equal(b.InsuranceFee))
	assert.True(t, d("105").Equal(b.Subtotal))
	assert.Empty(t, b.Discounts)
	assert.Nil(t, b.LoyaltyRedemption)
	assert.True(t, d("10.5").Equal(b.TaxAmount))
	assert.True(t, d("115.5").Equal(b.FinalAmount))
	assert.Equal(t, int64(115), b.LoyaltyPointsEarned)
}

func TestPipeline_Quote_LongDurationTier(t *testing.T) {
	testCases := []struct {
		days    int
		wantPct *decimal.Decimal
	}{
		{days: 6},
		{days: 7, wantPct: dp("5")},
		{days: 29, wantPct: dp("5")},
		{days: 30, wantPct: dp("15")},
		{days: 90, wantPct: dp("15")},
	}

	p := newPipeline(t, defaultPolicy(), alwaysAvailable())
	for _, tc := range testCases {
		res, err := p.Quote(context.Background(), pricing.Input{
			Car:      newCar(t, car.StatusActive),
			Interval: newInterval(t, tc.days),
		})
		require.NoError(t, err)

		if tc.wantPct == nil {
			assert.Empty(t, res.Breakdown.Discounts, "days=%d", tc.days)
			continue
		}
		require.Len(t, res.Breakdown.Discounts, 1, "days=%d", tc.days)
		entry := res.Breakdown.Discounts[0]
		assert.Equal(t, pricing.DiscountLongDuration, entry.Kind)
		assert.True(t, tc.wantPct.Equal(*entry.Percentage), "days=%d pct=%s", tc.days, entry.Percentage)
	}
}

func TestPipeline_Quote_LoyaltyClamping(t *testing.T) {
	testCases := []struct {
		name        string
		requested   int64
		available   int64
		wantApplied int64
	}{
		{name: "requested below every cap", requested: 500, available: 1000, wantApplied: 500},
		{name: "clamped to balance", requested: 5000, available: 1200, wantApplied: 1200},
		{name: "clamped to max redemption percent", requested: 10000, available: 10000, wantApplied: 5250},
		{name: "no balance", requested: 100, available: 0, wantApplied: 0},
		{name: "negative balance treated as empty", requested: 100, available: -50, wantApplied: 0},
	}

	p := newPipeline(t, defaultPolicy(), alwaysAvailable())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := p.Quote(context.Background(), pricing.Input{
				Car:                    newCar(t, car.StatusActive),
				Interval:               newInterval(t, 1),
				LoyaltyPointsToRedeem:  tc.requested,
				LoyaltyPointsAvailable: tc.available,
			})
			require.NoError(t, err)

			r := res.Breakdown.LoyaltyRedemption
			require.NotNil(t, r)
			assert.Equal(t, tc.wantApplied, r.PointsApplied)
			assert.True(t, d("0.01").Mul(decimal.NewFromInt(tc.wantApplied)).Equal(r.DiscountValue))
			assert.LessOrEqual(t, r.PointsApplied, tc.requested)
			assert.True(t, r.DiscountValue.LessThanOrEqual(res.Breakdown.Subtotal.Div(decimal.NewFromInt(2))))
		})
	}
}

func TestPipeline_Quote_DiscountsNeverExceedSubtotal(t *testing.T) {
	policy := defaultPolicy()
	policy.LongDurationTiers = []pricing.LongDurationTier{{MinDays: 1, Percent: d("90")}}
	policy.LoyaltyMaxRedemptionPercent = d("100")
	p := newPipeline(t, policy, alwaysAvailable())

	promoCode, err := promo.NewPromo(uuid.New(), "BIG500", dp("500"), nil, nil, nil)
	require.NoError(t, err)

	res, err := p.Quote(context.Background(), pricing.Input{
		Car:                    newCar(t, car.StatusActive),
		Interval:               newInterval(t, 1),
		Promo:                  promoCode,
		LoyaltyPointsToRedeem:  100000,
		LoyaltyPointsAvailable: 100000,
	})
	require.NoError(t, err)

	b := res.Breakdown
	require.Len(t, b.Discounts, 2)
	assert.True(t, d("94.5").Equal(b.Discounts[0].Amount))
	assert.True(t, d("10.5").Equal(b.Discounts[1].Amount), "promo capped at remaining subtotal")
	assert.Equal(t, int64(0), b.LoyaltyRedemption.PointsApplied)
	assert.True(t, b.TotalDiscount.Equal(b.Subtotal))
	assert.True(t, b.TotalAfterDiscounts.IsZero())
	assert.True(t, b.TaxAmount.IsZero())
	assert.True(t, b.FinalAmount.IsZero())
	assert.Equal(t, int64(0), b.LoyaltyPointsEarned)
}

func TestPipeline_Quote_TaxOnNet(t *testing.T) {
	p := newPipeline(t, defaultPolicy(), alwaysAvailable())
	for _, days := range []int{1, 3, 7, 10, 31, 44} {
		res, err := p.Quote(context.Background(), pricing.Input{
			Car:                    newCar(t, car.StatusActive),
			Interval:               newInterval(t, days),
			PickupBranchID:         uuid.New(),
			ReturnBranchID:         uuid.New(),
			LoyaltyPointsToRedeem:  3333,
			LoyaltyPointsAvailable: 3333,
		})
		require.NoError(t, err)

		b := res.Breakdown
		assert.True(t, b.TotalAfterDiscounts.Mul(d("0.1")).Round(2).Equal(b.TaxAmount), "days=%d", days)
		assert.True(t, b.Subtotal.Sub(b.TotalDiscount).Equal(b.TotalAfterDiscounts), "days=%d", days)
		assert.False(t, b.FinalAmount.IsNegative())
		for _, e := range b.Discounts {
			assert.False(t, e.Amount.IsNegative())
		}
	}
}

func TestPipeline_Quote_Validation(t *testing.T) {
	expired := now.Add(-time.Hour)
	stale, err := promo.NewPromo(uuid.New(), "OLD10", nil, dp("10"), nil, &expired)
	require.NoError(t, err)

	policy := defaultPolicy()
	policy.MaxRentalDays = 30
	p := newPipeline(t, policy, alwaysAvailable())

	testCases := []struct {
		name   string
		mutate func(in *pricing.Input)
		errIs  error
	}{
		{name: "missing car", mutate: func(in *pricing.Input) { in.Car = nil }, errIs: pricing.ErrMissingCar},
		{name: "zero interval", mutate: func(in *pricing.Input) { in.Interval = rental.Interval{} }, errIs: rental.ErrInvalidInterval},
		{name: "too long", mutate: func(in *pricing.Input) { in.Interval = newInterval(t, 31) }, errIs: rental.ErrRentalTooLong},
		{name: "negative points", mutate: func(in *pricing.Input) { in.LoyaltyPointsToRedeem = -1 }, errIs: pricing.ErrNegativePoints},
		{
			name: "zero extra quantity",
			mutate: func(in *pricing.Input) {
				in.Extras = []pricing.ExtraSelection{{ExtraID: uuid.New(), UnitDailyPrice: d("1")}}
			},
			errIs: rate.ErrInvalidQuantity,
		},
		{
			name: "negative extra price",
			mutate: func(in *pricing.Input) {
				in.Extras = []pricing.ExtraSelection{{ExtraID: uuid.New(), UnitDailyPrice: d("-1"), Quantity: 1}}
			},
			errIs: pricing.ErrNegativeExtraPrice,
		},
		{name: "expired promo", mutate: func(in *pricing.Input) { in.Promo = stale }, errIs: promo.ErrPromoExpired},
		{name: "unknown strategy", mutate: func(in *pricing.Input) { in.Strategy = "cheapest" }, errIs: pricing.ErrUnknownStrategy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := pricing.Input{
				Car:      newCar(t, car.StatusActive),
				Interval: newInterval(t, 3),
			}
			tc.mutate(&in)

			res, err := p.Quote(context.Background(), in)
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, res.Breakdown)
		})
	}
}

func TestPipeline_Quote_UsesInjectedOptimizer(t *testing.T) {
	calls := 0
	opt := optimizerFunc(func(_ context.Context, totalDays int, card rate.Card) (rate.Result, error) {
		calls++
		return rate.Optimize(totalDays, card)
	})
	p, err := pricing.NewPipeline(defaultPolicy(), alwaysAvailable(), opt, clock.NewMockClock(now))
	require.NoError(t, err)

	_, err = p.Quote(context.Background(), pricing.Input{
		Car:      newCar(t, car.StatusActive),
		Interval: newInterval(t, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

type optimizerFunc func(ctx context.Context, totalDays int, card rate.Card) (rate.Result, error)

func (f optimizerFunc) Optimize(ctx context.Context, totalDays int, card rate.Card) (rate.Result, error) {
	return f(ctx, totalDays, card)
}

func TestPipeline_Quote_PromoWindowFollowsClock(t *testing.T) {
	from := now.Add(24 * time.Hour)
	to := from.Add(7 * 24 * time.Hour)
	summer, err := promo.NewPromo(uuid.New(), "SUMMER10", nil, dp("10"), &from, &to)
	require.NoError(t, err)

	clk := clock.NewMockClock(now)
	p, err := pricing.NewPipeline(defaultPolicy(), alwaysAvailable(), nil, clk)
	require.NoError(t, err)

	in := pricing.Input{
		Car:      newCar(t, car.StatusActive),
		Interval: newInterval(t, 10),
		Promo:    summer,
	}

	_, err = p.Quote(context.Background(), in)
	require.ErrorIs(t, err, promo.ErrPromoNotYetValid)

	clk.Advance(48 * time.Hour)
	res, err := p.Quote(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, res.Breakdown)
	kinds := make([]pricing.DiscountKind, 0, len(res.Breakdown.Discounts))
	for _, d := range res.Breakdown.Discounts {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, pricing.DiscountPromoCode)

	clk.Advance(7 * 24 * time.Hour)
	_, err = p.Quote(context.Background(), in)
	require.ErrorIs(t, err, promo.ErrPromoExpired)
}
