package errs

import "errors"

// Domain-specific sentinel errors for the usecase layer
var (
	// Car errors
	ErrCarNotFound = errors.New("car not found")

	// Extra errors
	ErrExtraNotFound = errors.New("extra not found")

	// Promo errors
	ErrPromoNotFound = errors.New("promo code not found")
	ErrInvalidPromo  = errors.New("invalid promo code")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Pricing errors
	ErrInvariantViolated = errors.New("pricing invariant violated")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
