package request

import (
	"car-rental-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// Rates accept JSON numbers or decimal strings.
type OptimizeRateRequest struct {
	TotalDays   int             `json:"totalDays" binding:"required"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	WeeklyRate  decimal.Decimal `json:"weeklyRate"`
	MonthlyRate decimal.Decimal `json:"monthlyRate"`
}

func (r OptimizeRateRequest) ToQuery() queries.RateRequest {
	return queries.RateRequest{
		TotalDays:   r.TotalDays,
		DailyRate:   r.DailyRate,
		WeeklyRate:  r.WeeklyRate,
		MonthlyRate: r.MonthlyRate,
	}
}

type OptimizeExtraRateRequest struct {
	OptimizeRateRequest
	Quantity int `json:"quantity" binding:"required"`
}
