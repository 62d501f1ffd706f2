package promo

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

var hundred = decimal.NewFromInt(100)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOff  *decimal.Decimal
	percentOff *decimal.Decimal
}

func NewFixedDiscount(amountOff decimal.Decimal) (Discount, error) {
	if !amountOff.IsPositive() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOff: &amountOff}, nil
}

func NewPercentageDiscount(percentOff decimal.Decimal) (Discount, error) {
	if percentOff.IsNegative() || percentOff.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOff, percentOff *decimal.Decimal) (Discount, error) {
	if amountOff != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOff == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}
	if amountOff != nil {
		return NewFixedDiscount(*amountOff)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOff() decimal.Decimal {
	if d.amountOff != nil {
		return *d.amountOff
	}
	return decimal.Zero
}

func (d Discount) PercentOff() decimal.Decimal {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return decimal.Zero
}

// AmountAgainst returns the discount drawn from base, never more than base.
func (d Discount) AmountAgainst(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	var amount decimal.Decimal
	if d.IsPercentage() {
		amount = base.Mul(d.PercentOff()).Div(hundred)
	} else {
		amount = d.AmountOff()
	}
	return decimal.Min(amount, base)
}
