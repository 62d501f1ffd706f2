//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/handler/api"
	resdto "car-rental-pricing/internal/handler/dto/response"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/usecase/queries"
	"car-rental-pricing/tests/common/builder"
	"car-rental-pricing/tests/common/httptest"
	"car-rental-pricing/tests/common/testutil"
	queriesmock "car-rental-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockQuotes       *queriesmock.MockQuoteQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQuotes, s.mockAvailability)

	s.router.POST("/quotes", s.handler.Quote)
	s.router.GET("/cars/:id/availability", s.handler.Availability)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestQuote() {
	url := "/quotes"

	b := builder.NewQuoteBuilder().WithExtra(uuid.New(), 2).WithPromo("  summer10 ")
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns the breakdown", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*pricing.Result, error) {
				s.Equal(b.CarID, req.CarID)
				s.True(b.StartDate.Equal(req.Start))
				s.Require().NotNil(req.PromoCode)
				s.Equal("summer10", *req.PromoCode)
				s.Require().Len(req.Extras, 1)
				s.Equal(2, req.Extras[0].Quantity)
				return b.BuildResult(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsAvailable)
		s.Require().NotNil(body.CostBreakdown)
		s.Equal("900.00", body.CostBreakdown.BaseCost)
		s.Equal("987.53", body.CostBreakdown.FinalAmount)
		s.Equal("89.78", body.CostBreakdown.TaxAmount)
		s.Require().Len(body.CostBreakdown.Discounts, 1)
		s.Equal("long_duration", body.CostBreakdown.Discounts[0].Type)
		s.Equal(int64(987), body.CostBreakdown.LoyaltyPointsEarned)
		s.Require().NotNil(body.CostBreakdown.Decomposition)
		s.Equal(1, body.CostBreakdown.Decomposition.Weeks)
	})

	s.Run("success: unavailable car carries only a reason", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&pricing.Result{Available: false, Reason: pricing.ReasonCarBooked}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["isAvailable"])
		s.Equal(pricing.ReasonCarBooked, body["reason"])
		s.NotContains(body, "costBreakdown")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseQuote{
			{name: "missing field: carId", mutate: testutil.Field("carId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: endDate", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: pickupBranchId", mutate: testutil.Field("pickupBranchId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: returnBranchId", mutate: testutil.Field("returnBranchId", nil), expectCode: http.StatusBadRequest},
			{name: "malformed carId", mutate: testutil.Field("carId", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "malformed startDate", mutate: testutil.Field("startDate", "tomorrow"), expectCode: http.StatusBadRequest},
			{name: "extra without quantity", mutate: testutil.Field("extras", []map[string]any{{"extraId": uuid.New()}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "car not found", err: errs.Mark(errs.New("no row"), errs.ErrCarNotFound), expectCode: http.StatusNotFound, expectMsg: "Car not found"},
			{name: "extra not found", err: errs.Mark(errs.New("no row"), errs.ErrExtraNotFound), expectCode: http.StatusNotFound, expectMsg: "Extra not found"},
			{name: "promo not found", err: errs.Mark(errs.New("no row"), errs.ErrPromoNotFound), expectCode: http.StatusNotFound, expectMsg: "Promo code not found"},
			{name: "expired promo", err: errs.Mark(errs.Mark(errs.New("expired"), errs.ErrInvalidPromo), errs.ErrDomainValidation), expectCode: http.StatusBadRequest, expectMsg: "promo"},
			{name: "inverted interval", err: errs.Mark(rental.ErrInvalidInterval, errs.ErrDomainValidation), expectCode: http.StatusBadRequest, expectMsg: "Validation failed"},
			{name: "invariant violated", err: errs.Mark(errs.New("negative"), errs.ErrInvariantViolated), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
			{name: "database failure", err: errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *QuoteHandlerTestSuite) TestAvailability() {
	carID := uuid.New()
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	url := "/cars/" + carID.String() + "/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	s.Run("success: available", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), carID, gomock.Any(), gomock.Any(), nil).
			Return(&queries.AvailabilityView{CarID: carID, Start: start, End: end, Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsAvailable)
		s.Equal(carID, body.CarID)
	})

	s.Run("success: excludeBookingId is forwarded", func() {
		exclude := uuid.New()
		s.mockAvailability.EXPECT().Check(gomock.Any(), carID, gomock.Any(), gomock.Any(), &exclude).
			Return(&queries.AvailabilityView{CarID: carID, Reason: pricing.ReasonCarBooked}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&excludeBookingId="+exclude.String(), nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsAvailable)
		s.Equal(pricing.ReasonCarBooked, body.Reason)
	})

	s.Run("error: 400 on bad input", func() {
		for name, u := range map[string]string{
			"bad car id":     "/cars/xyz/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339),
			"missing end":    "/cars/" + carID.String() + "/availability?start=" + start.Format(time.RFC3339),
			"bad exclude id": url + "&excludeBookingId=nope",
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, u, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 for unknown car", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), carID, gomock.Any(), gomock.Any(), nil).
			Return(nil, errs.Mark(errs.New("no row"), errs.ErrCarNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}
