package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateRequest carries a raw tiered price list as received from a caller.
type RateRequest struct {
	TotalDays   int
	DailyRate   decimal.Decimal
	WeeklyRate  decimal.Decimal
	MonthlyRate decimal.Decimal
}

type ExtraRequest struct {
	ExtraID  uuid.UUID
	Quantity int
}

type QuoteRequest struct {
	CarID                 uuid.UUID
	Start                 time.Time
	End                   time.Time
	PickupBranchID        uuid.UUID
	ReturnBranchID        uuid.UUID
	Extras                []ExtraRequest
	PromoCode             *string
	LoyaltyPointsToRedeem int64
	UserID                *uuid.UUID
	BaseCostStrategy      string
	ExcludeBookingID      *uuid.UUID
}

// AvailabilityView represents the availability verdict for a car and interval
type AvailabilityView struct {
	CarID     uuid.UUID
	Start     time.Time
	End       time.Time
	Available bool
	Reason    string
}
