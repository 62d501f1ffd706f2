package api

import (
	"net/http"

	reqdto "car-rental-pricing/internal/handler/dto/request"
	resdto "car-rental-pricing/internal/handler/dto/response"
	"car-rental-pricing/internal/handler/httperr"
	"car-rental-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	q queries.RateQueries
}

func NewRateHandler(q queries.RateQueries) *RateHandler {
	return &RateHandler{q: q}
}

// @Summary Optimize rental rate
// @Description Cheapest combination of monthly, weekly and daily periods covering the duration
// @Tags rates
// @Accept json
// @Produce json
// @Param request body reqdto.OptimizeRateRequest true "Rate card and duration"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} map[string]string
// @Router /rates/optimize [post]
func (h *RateHandler) Optimize(c *gin.Context) {
	var req reqdto.OptimizeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.q.OptimizeRate(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateResult(req.TotalDays, 1, res))
}

// @Summary Optimize extra rate
// @Description Same as rate optimization with every tier price scaled by quantity
// @Tags rates
// @Accept json
// @Produce json
// @Param request body reqdto.OptimizeExtraRateRequest true "Rate card, duration and quantity"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} map[string]string
// @Router /rates/optimize-extra [post]
func (h *RateHandler) OptimizeExtra(c *gin.Context) {
	var req reqdto.OptimizeExtraRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.q.OptimizeExtraRate(c.Request.Context(), req.ToQuery(), req.Quantity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateResult(req.TotalDays, req.Quantity, res))
}
