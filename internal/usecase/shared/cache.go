package shared

import (
	"context"
	"fmt"

	"car-rental-pricing/internal/domain/rate"
)

// RateKey identifies one optimizer computation. Quantity is 1 for the base car rate.
type RateKey struct {
	TotalDays int
	Quantity  int
	Card      rate.Card
}

func (k RateKey) String() string {
	return fmt.Sprintf("%s:%s:%s:%d:%d",
		k.Card.Daily().String(), k.Card.Weekly().String(), k.Card.Monthly().String(), k.TotalDays, k.Quantity)
}

type RateCache interface {
	// Get reports a miss with found=false and a nil error.
	Get(ctx context.Context, key RateKey) (res rate.Result, found bool, err error)
	Set(ctx context.Context, key RateKey, res rate.Result) error
}
