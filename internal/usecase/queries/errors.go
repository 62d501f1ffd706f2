package queries

import (
	"errors"

	"car-rental-pricing/internal/domain/car"
	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/promo"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/usecase/shared"
)

var ErrLoyaltyUserRequired = errors.New("userId is required to redeem loyalty points")

var validationErrors = []error{
	rental.ErrInvalidInterval,
	rental.ErrRentalTooLong,
	rate.ErrInvalidDuration,
	rate.ErrDurationTooLong,
	rate.ErrNonPositiveRate,
	rate.ErrInvalidQuantity,
	pricing.ErrMissingCar,
	pricing.ErrNegativePoints,
	pricing.ErrNegativeExtraPrice,
	pricing.ErrUnknownStrategy,
	promo.ErrInvalidPromoCode,
	ErrLoyaltyUserRequired,
}

// markDomainErr attaches the usecase sentinel a handler maps to a status code.
func markDomainErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errs.ErrDomainValidation),
		errors.Is(err, errs.ErrCarNotFound),
		errors.Is(err, errs.ErrExtraNotFound),
		errors.Is(err, errs.ErrPromoNotFound),
		errors.Is(err, errs.ErrInvariantViolated),
		errors.Is(err, errs.ErrDatabaseOperationFailed):
		return err
	case errors.Is(err, promo.ErrPromoExpired), errors.Is(err, promo.ErrPromoNotYetValid):
		return errs.Mark(errs.Mark(err, errs.ErrInvalidPromo), errs.ErrDomainValidation)
	case errors.Is(err, pricing.ErrInvariantViolated):
		return errs.Mark(err, errs.ErrInvariantViolated)
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	return err
}

// isRejection reports whether err is the caller's fault rather than ours.
func isRejection(err error) bool {
	return errors.Is(err, errs.ErrDomainValidation) ||
		errors.Is(err, errs.ErrCarNotFound) ||
		errors.Is(err, errs.ErrExtraNotFound) ||
		errors.Is(err, errs.ErrPromoNotFound)
}

func readErr(err error, notFound error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrDatabaseOperationFailed)
}

func carFromSnapshot(s *shared.CarSnapshot) (*car.Car, error) {
	card, err := rate.NewCard(s.DailyRate, s.WeeklyRate, s.MonthlyRate)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid rate card for car "+s.ID.String()), errs.ErrDatabaseOperationFailed)
	}
	c, err := car.NewCar(s.ID, s.Name, car.Status(s.Status), card)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid car record "+s.ID.String()), errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}
