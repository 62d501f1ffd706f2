package rate

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDuration = errors.New("total days must be positive")
	ErrNonPositiveRate = errors.New("tier rates must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrDurationTooLong = errors.New("total days exceeds the optimizer limit")
)

const (
	DaysPerWeek  = 7
	DaysPerMonth = 30

	// MaxTotalDays caps the optimizer table regardless of business policy.
	MaxTotalDays = 100 * 365
)

// Card is a car's tiered price list. Tier prices are independent of each other.
type Card struct {
	daily   decimal.Decimal
	weekly  decimal.Decimal
	monthly decimal.Decimal
}

func NewCard(daily, weekly, monthly decimal.Decimal) (Card, error) {
	if !daily.IsPositive() || !weekly.IsPositive() || !monthly.IsPositive() {
		return Card{}, ErrNonPositiveRate
	}
	return Card{daily: daily, weekly: weekly, monthly: monthly}, nil
}

func (c Card) Daily() decimal.Decimal   { return c.daily }
func (c Card) Weekly() decimal.Decimal  { return c.weekly }
func (c Card) Monthly() decimal.Decimal { return c.monthly }

// Scale returns a card with every tier multiplied by quantity.
func (c Card) Scale(quantity int) (Card, error) {
	if quantity <= 0 {
		return Card{}, ErrInvalidQuantity
	}
	q := decimal.NewFromInt(int64(quantity))
	return Card{
		daily:   c.daily.Mul(q),
		weekly:  c.weekly.Mul(q),
		monthly: c.monthly.Mul(q),
	}, nil
}

// Decomposition counts the billing periods bought for a rental.
type Decomposition struct {
	Months int
	Weeks  int
	Days   int
}

func (d Decomposition) CoveredDays() int {
	return d.Months*DaysPerMonth + d.Weeks*DaysPerWeek + d.Days
}

// Covers reports whether the decomposition spans at least totalDays.
func (d Decomposition) Covers(totalDays int) bool {
	return d.CoveredDays() >= totalDays
}

// Cost prices the decomposition against a card.
func (d Decomposition) Cost(c Card) decimal.Decimal {
	return c.monthly.Mul(decimal.NewFromInt(int64(d.Months))).
		Add(c.weekly.Mul(decimal.NewFromInt(int64(d.Weeks)))).
		Add(c.daily.Mul(decimal.NewFromInt(int64(d.Days))))
}

type Result struct {
	MinCost       decimal.Decimal
	Decomposition Decomposition
	MonthsCost    decimal.Decimal
	WeeksCost     decimal.Decimal
	DaysCost      decimal.Decimal
}

func newResult(d Decomposition, c Card) Result {
	return Result{
		MinCost:       d.Cost(c),
		Decomposition: d,
		MonthsCost:    c.monthly.Mul(decimal.NewFromInt(int64(d.Months))),
		WeeksCost:     c.weekly.Mul(decimal.NewFromInt(int64(d.Weeks))),
		DaysCost:      c.daily.Mul(decimal.NewFromInt(int64(d.Days))),
	}
}
