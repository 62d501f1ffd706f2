package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPolicy   = errors.New("invalid pricing policy")
	ErrUnknownStrategy = errors.New("unknown base cost strategy")
)

var hundred = decimal.NewFromInt(100)

type Strategy string

const (
	StrategyFlat      Strategy = "flat"
	StrategyOptimized Strategy = "optimized"
)

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyFlat, StrategyOptimized:
		return true
	default:
		return false
	}
}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return st, nil
}

// LongDurationTier grants Percent off the subtotal for rentals of at least MinDays.
type LongDurationTier struct {
	MinDays int
	Percent decimal.Decimal
}

// Policy carries every business constant the pipeline prices with.
type Policy struct {
	TaxPercent       decimal.Decimal
	InsurancePercent decimal.Decimal
	DeliveryFee      decimal.Decimal

	LongDurationTiers []LongDurationTier

	LoyaltyPointValue           decimal.Decimal
	LoyaltyMaxRedemptionPercent decimal.Decimal
	LoyaltyPointsPerUnit        decimal.Decimal

	BaseCostStrategy Strategy
	MaxRentalDays    int
}

func (p Policy) Validate() error {
	for name, pct := range map[string]decimal.Decimal{
		"tax percent":                p.TaxPercent,
		"insurance percent":          p.InsurancePercent,
		"loyalty max redemption pct": p.LoyaltyMaxRedemptionPercent,
	} {
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidPolicy, name)
		}
	}
	if p.DeliveryFee.IsNegative() {
		return fmt.Errorf("%w: delivery fee must not be negative", ErrInvalidPolicy)
	}
	if !p.LoyaltyPointValue.IsPositive() {
		return fmt.Errorf("%w: loyalty point value must be positive", ErrInvalidPolicy)
	}
	if p.LoyaltyPointsPerUnit.IsNegative() {
		return fmt.Errorf("%w: loyalty points per unit must not be negative", ErrInvalidPolicy)
	}
	if !p.BaseCostStrategy.IsValid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidPolicy, ErrUnknownStrategy, p.BaseCostStrategy)
	}
	if p.MaxRentalDays < 0 {
		return fmt.Errorf("%w: max rental days must not be negative", ErrInvalidPolicy)
	}

	seen := make(map[int]struct{}, len(p.LongDurationTiers))
	for _, t := range p.LongDurationTiers {
		if t.MinDays <= 0 {
			return fmt.Errorf("%w: long duration tier threshold must be positive", ErrInvalidPolicy)
		}
		if t.Percent.IsNegative() || t.Percent.GreaterThan(hundred) {
			return fmt.Errorf("%w: long duration tier percent must be between 0 and 100", ErrInvalidPolicy)
		}
		if _, dup := seen[t.MinDays]; dup {
			return fmt.Errorf("%w: duplicate long duration tier for %d days", ErrInvalidPolicy, t.MinDays)
		}
		seen[t.MinDays] = struct{}{}
	}
	return nil
}

// longDurationTier returns the highest threshold tier matched by totalDays.
func (p Policy) longDurationTier(totalDays int) (LongDurationTier, bool) {
	tiers := make([]LongDurationTier, len(p.LongDurationTiers))
	copy(tiers, p.LongDurationTiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinDays > tiers[j].MinDays })

	for _, t := range tiers {
		if totalDays >= t.MinDays {
			return t, true
		}
	}
	return LongDurationTier{}, false
}
