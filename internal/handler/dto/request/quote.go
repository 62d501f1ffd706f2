package request

import (
	"strings"
	"time"

	"car-rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtraItem struct {
	ExtraID  uuid.UUID `json:"extraId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}

type QuoteRequest struct {
	CarID                 uuid.UUID   `json:"carId" binding:"required"`
	StartDate             time.Time   `json:"startDate" binding:"required"`
	EndDate               time.Time   `json:"endDate" binding:"required"`
	PickupBranchID        uuid.UUID   `json:"pickupBranchId" binding:"required"`
	ReturnBranchID        uuid.UUID   `json:"returnBranchId" binding:"required"`
	Extras                []ExtraItem `json:"extras,omitempty" binding:"omitempty,dive"`
	PromoCode             *string     `json:"promoCode,omitempty"`
	LoyaltyPointsToRedeem int64       `json:"loyaltyPointsToRedeem,omitempty"`
	UserID                *uuid.UUID  `json:"userId,omitempty"`
	BaseCostStrategy      string      `json:"baseCostStrategy,omitempty"`
	ExcludeBookingID      *uuid.UUID  `json:"excludeBookingId,omitempty"`
}

func (r QuoteRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r QuoteRequest) ToQuery() queries.QuoteRequest {
	extras := make([]queries.ExtraRequest, len(r.Extras))
	for i, e := range r.Extras {
		extras[i] = queries.ExtraRequest{ExtraID: e.ExtraID, Quantity: e.Quantity}
	}

	return queries.QuoteRequest{
		CarID:                 r.CarID,
		Start:                 r.StartDate,
		End:                   r.EndDate,
		PickupBranchID:        r.PickupBranchID,
		ReturnBranchID:        r.ReturnBranchID,
		Extras:                extras,
		PromoCode:             r.GetPromoCode(),
		LoyaltyPointsToRedeem: r.LoyaltyPointsToRedeem,
		UserID:                r.UserID,
		BaseCostStrategy:      strings.TrimSpace(r.BaseCostStrategy),
		ExcludeBookingID:      r.ExcludeBookingID,
	}
}

type AvailabilityQuery struct {
	Start            time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End              time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeBookingID string    `form:"excludeBookingId"`
}

func (q AvailabilityQuery) ExcludeID() (*uuid.UUID, error) {
	if q.ExcludeBookingID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(q.ExcludeBookingID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
