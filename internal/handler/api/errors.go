package api

import (
	"errors"
	"net/http"

	"car-rental-pricing/internal/handler/httperr"
	"car-rental-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels to a status and public message.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errors.Is(err, errs.ErrExtraNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Extra not found", nil)
	case errors.Is(err, errs.ErrPromoNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
	case errors.Is(err, errs.ErrInvalidPromo):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promo code", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"reason": rootMessage(err)})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage is the innermost error text, which is the domain rule that failed.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
