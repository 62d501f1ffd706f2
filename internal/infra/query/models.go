package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Cars struct {
	ID          uuid.UUID
	Name        string
	Status      string
	DailyRate   pgtype.Numeric
	WeeklyRate  pgtype.Numeric
	MonthlyRate pgtype.Numeric
}

type Extras struct {
	ID         uuid.UUID
	Name       string
	DailyPrice pgtype.Numeric
}

type PromoCodes struct {
	ID         uuid.UUID
	Code       string
	AmountOff  pgtype.Numeric
	PercentOff pgtype.Numeric
	ValidFrom  pgtype.Timestamptz
	ValidTo    pgtype.Timestamptz
}

type LoyaltyAccounts struct {
	UserID          uuid.UUID
	AvailablePoints int64
}

type HasOverlappingBookingParams struct {
	CarID            uuid.UUID
	StartTime        pgtype.Timestamptz
	EndTime          pgtype.Timestamptz
	ExcludeBookingID pgtype.UUID
}
