package rate

import (
	"github.com/shopspring/decimal"
)

type tier int

const (
	tierNone tier = iota
	tierDay
	tierWeek
	tierMonth
)

func (t tier) length() int {
	switch t {
	case tierDay:
		return 1
	case tierWeek:
		return DaysPerWeek
	case tierMonth:
		return DaysPerMonth
	default:
		return 0
	}
}

// cell is the best way found to cover at least n days.
// Ordering: cost, then total periods, then day-units, then covered days.
type cell struct {
	cost    decimal.Decimal
	periods int
	days    int
	covered int
	choice  tier
}

func (c cell) less(o cell) bool {
	if cmp := c.cost.Cmp(o.cost); cmp != 0 {
		return cmp < 0
	}
	if c.periods != o.periods {
		return c.periods < o.periods
	}
	if c.days != o.days {
		return c.days < o.days
	}
	return c.covered < o.covered
}

// Optimize returns the cheapest combination of month, week and day periods covering at least
// totalDays. Buying a period longer than the remaining need is allowed.
func Optimize(totalDays int, card Card) (Result, error) {
	if totalDays <= 0 {
		return Result{}, ErrInvalidDuration
	}
	if totalDays > MaxTotalDays {
		return Result{}, ErrDurationTooLong
	}
	if !card.daily.IsPositive() || !card.weekly.IsPositive() || !card.monthly.IsPositive() {
		return Result{}, ErrNonPositiveRate
	}

	table := make([]cell, totalDays+1)
	table[0] = cell{cost: decimal.Zero}

	for n := 1; n <= totalDays; n++ {
		var best cell
		found := false
		for _, t := range []tier{tierMonth, tierWeek, tierDay} {
			prev := table[max(n-t.length(), 0)]
			cand := cell{
				cost:    prev.cost.Add(card.priceOf(t)),
				periods: prev.periods + 1,
				days:    prev.days,
				covered: prev.covered + t.length(),
				choice:  t,
			}
			if t == tierDay {
				cand.days++
			}
			if !found || cand.less(best) {
				best = cand
				found = true
			}
		}
		table[n] = best
	}

	return newResult(reconstruct(table, totalDays), card), nil
}

// OptimizeExtra runs Optimize on a card whose tiers are scaled by quantity.
func OptimizeExtra(totalDays int, card Card, quantity int) (Result, error) {
	scaled, err := card.Scale(quantity)
	if err != nil {
		return Result{}, err
	}
	return Optimize(totalDays, scaled)
}

func reconstruct(table []cell, totalDays int) Decomposition {
	var d Decomposition
	for n := totalDays; n > 0; {
		t := table[n].choice
		switch t {
		case tierMonth:
			d.Months++
		case tierWeek:
			d.Weeks++
		case tierDay:
			d.Days++
		default:
			return d
		}
		n -= t.length()
	}
	return d
}

func (c Card) priceOf(t tier) decimal.Decimal {
	switch t {
	case tierDay:
		return c.daily
	case tierWeek:
		return c.weekly
	case tierMonth:
		return c.monthly
	default:
		return decimal.Zero
	}
}
