package pricing

import (
	"context"
	"errors"
	"fmt"

	"car-rental-pricing/internal/domain/car"
	"car-rental-pricing/internal/domain/promo"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingCar         = errors.New("quote requires a car")
	ErrNegativePoints     = errors.New("loyalty points to redeem must not be negative")
	ErrNegativeExtraPrice = errors.New("extra daily price must not be negative")
	ErrInvariantViolated  = errors.New("pricing invariant violated")
	ErrMissingGate        = errors.New("pipeline has no availability gate")
)

const (
	ReasonCarBooked      = "car is already booked for the requested period"
	ReasonCarNotRentable = "car is not available for rental"
)

type AvailabilityGate interface {
	IsAvailable(ctx context.Context, carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) (bool, error)
}

type RateOptimizer interface {
	Optimize(ctx context.Context, totalDays int, card rate.Card) (rate.Result, error)
}

// DirectOptimizer runs the optimizer in-process without caching.
type DirectOptimizer struct{}

func (DirectOptimizer) Optimize(_ context.Context, totalDays int, card rate.Card) (rate.Result, error) {
	return rate.Optimize(totalDays, card)
}

type ExtraSelection struct {
	ExtraID        uuid.UUID
	Name           string
	UnitDailyPrice decimal.Decimal
	Quantity       int
}

type Input struct {
	Car              *car.Car
	Interval         rental.Interval
	PickupBranchID   uuid.UUID
	ReturnBranchID   uuid.UUID
	Extras           []ExtraSelection
	Promo            *promo.Promo
	ExcludeBookingID *uuid.UUID

	LoyaltyPointsToRedeem  int64
	LoyaltyPointsAvailable int64

	// Strategy overrides the policy default when set.
	Strategy Strategy
}

type Pipeline struct {
	policy    Policy
	gate      AvailabilityGate
	optimizer RateOptimizer
	clock     clock.Clock
}

// NewPipeline accepts a nil gate for callers that bind one per transaction with WithGate.
func NewPipeline(policy Policy, gate AvailabilityGate, optimizer RateOptimizer, clk clock.Clock) (*Pipeline, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if optimizer == nil {
		optimizer = DirectOptimizer{}
	}
	return &Pipeline{
		policy:    policy,
		gate:      gate,
		optimizer: optimizer,
		clock:     clk,
	}, nil
}

func (p *Pipeline) Policy() Policy {
	return p.policy
}

// WithGate returns a copy of the pipeline that checks availability through gate.
func (p *Pipeline) WithGate(gate AvailabilityGate) *Pipeline {
	cp := *p
	cp.gate = gate
	return &cp
}

func (p *Pipeline) Quote(ctx context.Context, in Input) (Result, error) {
	strategy, err := p.validate(in)
	if err != nil {
		return Result{}, err
	}

	// 1. availability
	if unavailable, ok, err := p.CheckAvailability(ctx, in.Car, in.Interval, in.ExcludeBookingID); err != nil || !ok {
		return unavailable, err
	}
	if in.Promo != nil {
		if err := in.Promo.ValidateUsage(p.clock.Now()); err != nil {
			return Result{}, err
		}
	}

	// 2. duration
	totalDays := in.Interval.TotalDays()

	// 3. base cost
	b := &CostBreakdown{
		TotalDays:        totalDays,
		BaseCostStrategy: strategy,
	}
	baseCost, err := p.baseCost(ctx, strategy, totalDays, in.Car.RateCard(), b)
	if err != nil {
		return Result{}, err
	}

	// 4. extras
	extrasTotal := decimal.Zero
	days := decimal.NewFromInt(int64(totalDays))
	for _, e := range in.Extras {
		cost := e.UnitDailyPrice.Mul(days).Mul(decimal.NewFromInt(int64(e.Quantity)))
		extrasTotal = extrasTotal.Add(cost)
		b.Extras = append(b.Extras, ExtraLineItem{
			ExtraID:        e.ExtraID,
			Name:           e.Name,
			UnitDailyPrice: money(e.UnitDailyPrice),
			Quantity:       e.Quantity,
			TotalCost:      money(cost),
		})
	}

	// 5. fees
	deliveryFee := decimal.Zero
	if in.PickupBranchID != in.ReturnBranchID {
		deliveryFee = p.policy.DeliveryFee
	}
	insuranceFee := baseCost.Mul(p.policy.InsurancePercent).Div(hundred)

	// 6. subtotal
	subtotal := baseCost.Add(extrasTotal).Add(deliveryFee).Add(insuranceFee)

	// 7. discounts
	discounts, redemption, totalDiscount := p.discounts(in, totalDays, subtotal)

	// 8. net
	net := subtotal.Sub(totalDiscount)

	// 9. tax
	tax := net.Mul(p.policy.TaxPercent).Div(hundred)

	// 10. final
	final := money(net.Add(tax))
	if final.IsNegative() || net.IsNegative() || totalDiscount.GreaterThan(subtotal) {
		return Result{}, fmt.Errorf("%w: final=%s net=%s discount=%s subtotal=%s",
			ErrInvariantViolated, final, net, totalDiscount, subtotal)
	}

	// 11. accrual
	earned := final.Mul(p.policy.LoyaltyPointsPerUnit).Floor().IntPart()

	b.BaseCost = money(baseCost)
	b.ExtrasTotal = money(extrasTotal)
	b.DeliveryFee = money(deliveryFee)
	b.InsuranceFee = money(insuranceFee)
	b.Subtotal = money(subtotal)
	b.Discounts = discounts
	b.TotalDiscount = money(totalDiscount)
	b.LoyaltyRedemption = redemption
	b.TotalAfterDiscounts = money(net)
	b.TaxRate = p.policy.TaxPercent
	b.TaxAmount = money(tax)
	b.FinalAmount = final
	b.LoyaltyPointsEarned = earned

	return Result{Available: true, Breakdown: b}, nil
}

// CheckAvailability is stage 1 on its own. ok is false with the unavailable result
// when the car is not rentable or already booked.
func (p *Pipeline) CheckAvailability(ctx context.Context, c *car.Car, interval rental.Interval, excludeBookingID *uuid.UUID) (Result, bool, error) {
	if c == nil {
		return Result{}, false, ErrMissingCar
	}
	if p.gate == nil {
		return Result{}, false, ErrMissingGate
	}
	if !c.IsRentable() {
		return Unavailable(fmt.Sprintf("%s (status: %s)", ReasonCarNotRentable, c.Status())), false, nil
	}
	available, err := p.gate.IsAvailable(ctx, c.ID(), interval, excludeBookingID)
	if err != nil {
		return Result{}, false, err
	}
	if !available {
		return Unavailable(ReasonCarBooked), false, nil
	}
	return Result{}, true, nil
}

func (p *Pipeline) validate(in Input) (Strategy, error) {
	if in.Car == nil {
		return "", ErrMissingCar
	}
	if in.Interval.Start().IsZero() && in.Interval.End().IsZero() {
		return "", rental.ErrInvalidInterval
	}
	if err := in.Interval.ValidateMaxDays(p.policy.MaxRentalDays); err != nil {
		return "", err
	}
	for _, e := range in.Extras {
		if e.Quantity <= 0 {
			return "", rate.ErrInvalidQuantity
		}
		if e.UnitDailyPrice.IsNegative() {
			return "", ErrNegativeExtraPrice
		}
	}
	if in.LoyaltyPointsToRedeem < 0 {
		return "", ErrNegativePoints
	}

	strategy := p.policy.BaseCostStrategy
	if in.Strategy != "" {
		if !in.Strategy.IsValid() {
			return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, in.Strategy)
		}
		strategy = in.Strategy
	}
	return strategy, nil
}

func (p *Pipeline) baseCost(ctx context.Context, strategy Strategy, totalDays int, card rate.Card, b *CostBreakdown) (decimal.Decimal, error) {
	if strategy == StrategyFlat {
		return card.Daily().Mul(decimal.NewFromInt(int64(totalDays))), nil
	}

	res, err := p.optimizer.Optimize(ctx, totalDays, card)
	if err != nil {
		return decimal.Zero, err
	}
	d := res.Decomposition
	b.Decomposition = &d
	return res.MinCost, nil
}

// discounts stacks long duration, promo and loyalty in that order against the
// subtotal. The running total never exceeds the subtotal. Amounts keep full
// precision here and are rounded only in the surfaced entries.
func (p *Pipeline) discounts(in Input, totalDays int, subtotal decimal.Decimal) ([]DiscountEntry, *LoyaltyRedemption, decimal.Decimal) {
	var entries []DiscountEntry
	running := decimal.Zero
	remaining := func() decimal.Decimal { return subtotal.Sub(running) }

	if tier, ok := p.policy.longDurationTier(totalDays); ok {
		amount := decimal.Min(subtotal.Mul(tier.Percent).Div(hundred), remaining())
		running = running.Add(amount)
		pct := tier.Percent
		entries = append(entries, DiscountEntry{
			Kind:        DiscountLongDuration,
			Percentage:  &pct,
			Amount:      money(amount),
			Description: fmt.Sprintf("%s%% off for rentals of %d days or more", tier.Percent, tier.MinDays),
		})
	}

	if in.Promo != nil {
		d := in.Promo.Discount()
		amount := decimal.Min(d.AmountAgainst(subtotal), remaining())
		running = running.Add(amount)
		entry := DiscountEntry{
			Kind:        DiscountPromoCode,
			Amount:      money(amount),
			Description: fmt.Sprintf("promo code %s", in.Promo.Code()),
		}
		if d.IsPercentage() {
			pct := d.PercentOff()
			entry.Percentage = &pct
		}
		entries = append(entries, entry)
	}

	var redemption *LoyaltyRedemption
	if in.LoyaltyPointsToRedeem > 0 {
		redemption = p.redeem(in.LoyaltyPointsToRedeem, in.LoyaltyPointsAvailable, subtotal, remaining())
		value := redemption.DiscountValue
		running = running.Add(value)
		redemption.DiscountValue = money(value)
		if redemption.PointsApplied > 0 {
			entries = append(entries, DiscountEntry{
				Kind:        DiscountLoyaltyPoints,
				Amount:      money(value),
				Description: fmt.Sprintf("%d loyalty points redeemed", redemption.PointsApplied),
			})
		}
	}

	return entries, redemption, running
}

// redeem clamps the requested points to the balance, the percentage cap on the
// pre-discount subtotal and whatever is left of the subtotal.
func (p *Pipeline) redeem(requested, available int64, subtotal, remaining decimal.Decimal) *LoyaltyRedemption {
	pointValue := p.policy.LoyaltyPointValue
	capValue := subtotal.Mul(p.policy.LoyaltyMaxRedemptionPercent).Div(hundred)
	capPoints := capValue.Div(pointValue).Floor().IntPart()
	remainingPoints := remaining.Div(pointValue).Floor().IntPart()

	applied := min(requested, max(available, 0), capPoints, remainingPoints)
	applied = max(applied, 0)

	return &LoyaltyRedemption{
		PointsRequested:      requested,
		PointsAvailable:      available,
		PointsApplied:        applied,
		PointValue:           pointValue,
		MaxRedemptionPercent: p.policy.LoyaltyMaxRedemptionPercent,
		DiscountValue:        pointValue.Mul(decimal.NewFromInt(applied)),
	}
}
