package rental

import (
	"errors"
	"time"
)

var (
	ErrInvalidInterval = errors.New("start time must be before end time")
	ErrRentalTooLong   = errors.New("rental duration exceeds the allowed maximum")
)

const day = 24 * time.Hour

// Interval is a half-open rental window [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// TotalDays bills the interval in whole days, rounding any partial day up.
func (i Interval) TotalDays() int {
	d := i.Duration()
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// ValidateMaxDays rejects intervals billed for more than maxDays. Zero disables the check.
func (i Interval) ValidateMaxDays(maxDays int) error {
	if maxDays > 0 && i.TotalDays() > maxDays {
		return ErrRentalTooLong
	}
	return nil
}

func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}
