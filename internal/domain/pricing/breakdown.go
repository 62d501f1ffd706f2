package pricing

import (
	"car-rental-pricing/internal/domain/rate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountKind string

const (
	DiscountLongDuration  DiscountKind = "long_duration"
	DiscountPromoCode     DiscountKind = "promo_code"
	DiscountLoyaltyPoints DiscountKind = "loyalty_points"
)

func (k DiscountKind) String() string {
	return string(k)
}

type DiscountEntry struct {
	Kind        DiscountKind
	Percentage  *decimal.Decimal
	Amount      decimal.Decimal
	Description string
}

// ExtraLineItem is one add-on priced per day for the whole rental.
type ExtraLineItem struct {
	ExtraID        uuid.UUID
	Name           string
	UnitDailyPrice decimal.Decimal
	Quantity       int
	TotalCost      decimal.Decimal
}

type LoyaltyRedemption struct {
	PointsRequested      int64
	PointsAvailable      int64
	PointsApplied        int64
	PointValue           decimal.Decimal
	MaxRedemptionPercent decimal.Decimal
	DiscountValue        decimal.Decimal
}

// CostBreakdown is the itemised quote. Money fields are rounded to cents.
type CostBreakdown struct {
	TotalDays        int
	BaseCostStrategy Strategy
	BaseCost         decimal.Decimal
	Decomposition    *rate.Decomposition

	Extras      []ExtraLineItem
	ExtrasTotal decimal.Decimal

	DeliveryFee  decimal.Decimal
	InsuranceFee decimal.Decimal
	Subtotal     decimal.Decimal

	Discounts         []DiscountEntry
	TotalDiscount     decimal.Decimal
	LoyaltyRedemption *LoyaltyRedemption

	TotalAfterDiscounts decimal.Decimal
	TaxRate             decimal.Decimal
	TaxAmount           decimal.Decimal
	FinalAmount         decimal.Decimal

	LoyaltyPointsEarned int64
}

// Result is either an unavailable verdict with a reason or a full breakdown.
type Result struct {
	Available bool
	Reason    string
	Breakdown *CostBreakdown
}

func Unavailable(reason string) Result {
	return Result{Available: false, Reason: reason}
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
