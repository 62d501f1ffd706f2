package api

import (
	"net/http"

	reqdto "car-rental-pricing/internal/handler/dto/request"
	resdto "car-rental-pricing/internal/handler/dto/response"
	"car-rental-pricing/internal/handler/httperr"
	"car-rental-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quotes       queries.QuoteQueries
	availability queries.AvailabilityQueries
}

func NewQuoteHandler(quotes queries.QuoteQueries, availability queries.AvailabilityQueries) *QuoteHandler {
	return &QuoteHandler{
		quotes:       quotes,
		availability: availability,
	}
}

// @Summary Quote booking cost
// @Description Itemised price for renting a car over an interval. An unavailable car yields isAvailable=false and no breakdown.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.quotes.Quote(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(res))
}

// @Summary Check car availability
// @Description Whether the car is rentable and free of overlapping bookings in [start, end)
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param start query string true "Start (RFC3339)"
// @Param end query string true "End (RFC3339)"
// @Param excludeBookingId query string false "Booking to ignore, for modifications"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/availability [get]
func (h *QuoteHandler) Availability(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return
	}
	var q reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}
	exclude, err := q.ExcludeID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid excludeBookingId", nil)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), carID, q.Start, q.End, exclude)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
