package response

import (
	"car-rental-pricing/internal/domain/rate"

	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type DecompositionResponse struct {
	Months      int `json:"months"`
	Weeks       int `json:"weeks"`
	Days        int `json:"days"`
	CoveredDays int `json:"coveredDays"`
}

type RateResponse struct {
	TotalDays     int                   `json:"totalDays"`
	Quantity      int                   `json:"quantity"`
	MinCost       string                `json:"minCost"`
	Decomposition DecompositionResponse `json:"decomposition"`
	MonthsCost    string                `json:"monthsCost"`
	WeeksCost     string                `json:"weeksCost"`
	DaysCost      string                `json:"daysCost"`
}

func fromDecomposition(d rate.Decomposition) DecompositionResponse {
	return DecompositionResponse{
		Months:      d.Months,
		Weeks:       d.Weeks,
		Days:        d.Days,
		CoveredDays: d.CoveredDays(),
	}
}

func FromRateResult(totalDays, quantity int, r rate.Result) *RateResponse {
	return &RateResponse{
		TotalDays:     totalDays,
		Quantity:      quantity,
		MinCost:       money(r.MinCost),
		Decomposition: fromDecomposition(r.Decomposition),
		MonthsCost:    money(r.MonthsCost),
		WeeksCost:     money(r.WeeksCost),
		DaysCost:      money(r.DaysCost),
	}
}
