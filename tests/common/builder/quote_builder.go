//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/rate"
	reqdto "car-rental-pricing/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteBuilder struct {
	CarID                 uuid.UUID
	StartDate             time.Time
	EndDate               time.Time
	PickupBranchID        uuid.UUID
	ReturnBranchID        uuid.UUID
	Extras                []reqdto.ExtraItem
	PromoCode             *string
	LoyaltyPointsToRedeem int64
	UserID                *uuid.UUID
}

func NewQuoteBuilder() *QuoteBuilder {
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	branch := uuid.New()
	return &QuoteBuilder{
		CarID:          uuid.New(),
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 10),
		PickupBranchID: branch,
		ReturnBranchID: branch,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) ForDays(days int) *QuoteBuilder {
	b.EndDate = b.StartDate.AddDate(0, 0, days)
	return b
}

func (b *QuoteBuilder) WithExtra(id uuid.UUID, quantity int) *QuoteBuilder {
	b.Extras = append(b.Extras, reqdto.ExtraItem{ExtraID: id, Quantity: quantity})
	return b
}

func (b *QuoteBuilder) WithPromo(code string) *QuoteBuilder {
	b.PromoCode = &code
	return b
}

func (b *QuoteBuilder) WithLoyalty(userID uuid.UUID, points int64) *QuoteBuilder {
	b.UserID = &userID
	b.LoyaltyPointsToRedeem = points
	return b
}

func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CarID:                 b.CarID,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
		PickupBranchID:        b.PickupBranchID,
		ReturnBranchID:        b.ReturnBranchID,
		Extras:                b.Extras,
		PromoCode:             b.PromoCode,
		LoyaltyPointsToRedeem: b.LoyaltyPointsToRedeem,
		UserID:                b.UserID,
	}
}

// BuildResult is a plausible 10 day quote with no extras or discounts beyond the tier.
func (b *QuoteBuilder) BuildResult() *pricing.Result {
	pct := decimal.NewFromInt(5)
	return &pricing.Result{
		Available: true,
		Breakdown: &pricing.CostBreakdown{
			TotalDays:        10,
			BaseCostStrategy: pricing.StrategyOptimized,
			BaseCost:         decimal.NewFromInt(900),
			Decomposition:    &rate.Decomposition{Weeks: 1, Days: 3},
			ExtrasTotal:      decimal.Zero,
			DeliveryFee:      decimal.Zero,
			InsuranceFee:     decimal.NewFromInt(45),
			Subtotal:         decimal.NewFromInt(945),
			Discounts: []pricing.DiscountEntry{
				{Kind: pricing.DiscountLongDuration, Percentage: &pct, Amount: decimal.RequireFromString("47.25"), Description: "5% long duration discount"},
			},
			TotalDiscount:       decimal.RequireFromString("47.25"),
			TotalAfterDiscounts: decimal.RequireFromString("897.75"),
			TaxRate:             decimal.NewFromInt(10),
			TaxAmount:           decimal.RequireFromString("89.78"),
			FinalAmount:         decimal.RequireFromString("987.53"),
			LoyaltyPointsEarned: 987,
		},
	}
}
