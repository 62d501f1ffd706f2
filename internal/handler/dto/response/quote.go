package response

import (
	"time"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtraLineResponse struct {
	ExtraID        uuid.UUID `json:"extraId"`
	Name           string    `json:"name"`
	UnitDailyPrice string    `json:"unitDailyPrice"`
	Quantity       int       `json:"quantity"`
	TotalCost      string    `json:"totalCost"`
}

type DiscountResponse struct {
	Type        string  `json:"type"`
	Percentage  *string `json:"percentage,omitempty"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
}

type LoyaltyRedemptionResponse struct {
	PointsRequested      int64  `json:"pointsRequested"`
	PointsAvailable      int64  `json:"pointsAvailable"`
	PointsApplied        int64  `json:"pointsApplied"`
	PointValue           string `json:"pointValue"`
	MaxRedemptionPercent string `json:"maxRedemptionPercent"`
	DiscountValue        string `json:"discountValue"`
}

type CostBreakdownResponse struct {
	TotalDays           int                        `json:"totalDays"`
	BaseCostStrategy    string                     `json:"baseCostStrategy"`
	BaseCost            string                     `json:"baseCost"`
	Decomposition       *DecompositionResponse     `json:"decomposition,omitempty"`
	Extras              []ExtraLineResponse        `json:"extras"`
	ExtrasTotal         string                     `json:"extrasTotal"`
	DeliveryFee         string                     `json:"deliveryFee"`
	InsuranceFee        string                     `json:"insuranceFee"`
	Subtotal            string                     `json:"subtotal"`
	Discounts           []DiscountResponse         `json:"discounts"`
	TotalDiscount       string                     `json:"totalDiscount"`
	LoyaltyRedemption   *LoyaltyRedemptionResponse `json:"loyaltyRedemption,omitempty"`
	TotalAfterDiscounts string                     `json:"totalAfterDiscounts"`
	TaxRate             string                     `json:"taxRate"`
	TaxAmount           string                     `json:"taxAmount"`
	FinalAmount         string                     `json:"finalAmount"`
	LoyaltyPointsEarned int64                      `json:"loyaltyPointsEarned"`
}

type QuoteResponse struct {
	IsAvailable   bool                   `json:"isAvailable"`
	Reason        string                 `json:"reason,omitempty"`
	CostBreakdown *CostBreakdownResponse `json:"costBreakdown,omitempty"`
}

func FromQuoteResult(r *pricing.Result) *QuoteResponse {
	if !r.Available || r.Breakdown == nil {
		return &QuoteResponse{IsAvailable: false, Reason: r.Reason}
	}
	return &QuoteResponse{
		IsAvailable:   true,
		CostBreakdown: fromBreakdown(r.Breakdown),
	}
}

func fromBreakdown(b *pricing.CostBreakdown) *CostBreakdownResponse {
	res := &CostBreakdownResponse{
		TotalDays:           b.TotalDays,
		BaseCostStrategy:    string(b.BaseCostStrategy),
		BaseCost:            money(b.BaseCost),
		Extras:              make([]ExtraLineResponse, len(b.Extras)),
		ExtrasTotal:         money(b.ExtrasTotal),
		DeliveryFee:         money(b.DeliveryFee),
		InsuranceFee:        money(b.InsuranceFee),
		Subtotal:            money(b.Subtotal),
		Discounts:           make([]DiscountResponse, len(b.Discounts)),
		TotalDiscount:       money(b.TotalDiscount),
		TotalAfterDiscounts: money(b.TotalAfterDiscounts),
		TaxRate:             b.TaxRate.String(),
		TaxAmount:           money(b.TaxAmount),
		FinalAmount:         money(b.FinalAmount),
		LoyaltyPointsEarned: b.LoyaltyPointsEarned,
	}

	if b.Decomposition != nil {
		d := fromDecomposition(*b.Decomposition)
		res.Decomposition = &d
	}

	for i, e := range b.Extras {
		res.Extras[i] = ExtraLineResponse{
			ExtraID:        e.ExtraID,
			Name:           e.Name,
			UnitDailyPrice: money(e.UnitDailyPrice),
			Quantity:       e.Quantity,
			TotalCost:      money(e.TotalCost),
		}
	}

	for i, d := range b.Discounts {
		item := DiscountResponse{
			Type:        d.Kind.String(),
			Amount:      money(d.Amount),
			Description: d.Description,
		}
		if d.Percentage != nil {
			pct := d.Percentage.String()
			item.Percentage = &pct
		}
		res.Discounts[i] = item
	}

	if lr := b.LoyaltyRedemption; lr != nil {
		res.LoyaltyRedemption = &LoyaltyRedemptionResponse{
			PointsRequested:      lr.PointsRequested,
			PointsAvailable:      lr.PointsAvailable,
			PointsApplied:        lr.PointsApplied,
			PointValue:           lr.PointValue.String(),
			MaxRedemptionPercent: lr.MaxRedemptionPercent.String(),
			DiscountValue:        money(lr.DiscountValue),
		}
	}

	return res
}

type AvailabilityResponse struct {
	CarID       uuid.UUID `json:"carId"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsAvailable bool      `json:"isAvailable"`
	Reason      string    `json:"reason,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		CarID:       v.CarID,
		Start:       v.Start,
		End:         v.End,
		IsAvailable: v.Available,
		Reason:      v.Reason,
	}
}
