package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPromoExpired     = errors.New("promo code has expired")
	ErrPromoNotYetValid = errors.New("promo code is not yet valid")
)

type Promo struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	validFrom *time.Time
	validTo   *time.Time
}

func NewPromo(
	id uuid.UUID,
	code string,
	amountOff *decimal.Decimal,
	percentOff *decimal.Decimal,
	validFrom, validTo *time.Time,
) (*Promo, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(amountOff, percentOff)
	if err != nil {
		return nil, err
	}

	return &Promo{
		id:        id,
		code:      promoCode,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

func (p *Promo) IsValidAt(t time.Time) bool {
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return false
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return false
	}
	return true
}

func (p *Promo) ValidateUsage(t time.Time) error {
	if !p.IsValidAt(t) {
		if p.validFrom != nil && t.Before(*p.validFrom) {
			return ErrPromoNotYetValid
		}
		return ErrPromoExpired
	}
	return nil
}

func (p *Promo) ID() uuid.UUID         { return p.id }
func (p *Promo) Code() Code            { return p.code }
func (p *Promo) Discount() Discount    { return p.discount }
func (p *Promo) ValidFrom() *time.Time { return p.validFrom }
func (p *Promo) ValidTo() *time.Time   { return p.validTo }
