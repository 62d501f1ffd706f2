package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CarSnapshot struct {
	ID          uuid.UUID
	Name        string
	Status      string
	DailyRate   decimal.Decimal
	WeeklyRate  decimal.Decimal
	MonthlyRate decimal.Decimal
}

type ExtraSnapshot struct {
	ID         uuid.UUID
	Name       string
	DailyPrice decimal.Decimal
}

type PromoSnapshot struct {
	ID         uuid.UUID
	Code       string
	AmountOff  *decimal.Decimal
	PercentOff *decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
}

type LoyaltyBalance struct {
	UserID          uuid.UUID
	AvailablePoints int64
}
