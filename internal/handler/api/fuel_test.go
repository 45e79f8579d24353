//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"travel-cost-service/internal/handler/api"
	reqdto "travel-cost-service/internal/handler/dto/request"
	resdto "travel-cost-service/internal/handler/dto/response"
	"travel-cost-service/tests/common/httptest"
	"travel-cost-service/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type FuelHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.FuelHandler
}

func (s *FuelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.handler = api.NewFuelHandler()
	s.router.POST("/api/calculate", s.handler.Calculate)
}

func TestFuelHandlerSuite(t *testing.T) {
	suite.Run(t, new(FuelHandlerTestSuite))
}

func validFuelBody() reqdto.CalculateFuelCostRequest {
	distance := 100.0
	price := 1.5
	efficiency := 10.0
	return reqdto.CalculateFuelCostRequest{
		Distance:       &distance,
		FuelPrice:      &price,
		FuelEfficiency: &efficiency,
	}
}

// ================================================================================
// TestCalculate
// ================================================================================

func (s *FuelHandlerTestSuite) TestCalculate() {
	url := "/api/calculate"

	reqBody := validFuelBody()

	s.Run("success: returns 200 OK with cost and echoed inputs", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.FuelCostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(15.0, response.FuelCost, 1e-9)
		s.InDelta(100.0, response.Distance, 1e-9)
		s.InDelta(1.5, response.FuelPrice, 1e-9)
		s.InDelta(10.0, response.FuelEfficiency, 1e-9)
	})

	s.Run("success: result is rounded to two decimal places", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("distance", 100),
			testutil.Field("fuelPrice", 1.499),
			testutil.Field("fuelEfficiency", 7))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var response resdto.FuelCostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(21.41, response.FuelCost, 1e-9)
	})

	s.Run("success: zero distance yields zero cost", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("distance", 0))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var response resdto.FuelCostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.FuelCost)
	})

	s.Run("error: 400 Bad Request on zero fuel efficiency", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("fuelEfficiency", 0))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "fuel efficiency must be greater than zero")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: distance", mutate: testutil.Field("distance", nil)},
			{name: "missing field: fuelPrice", mutate: testutil.Field("fuelPrice", nil)},
			{name: "missing field: fuelEfficiency", mutate: testutil.Field("fuelEfficiency", nil)},
			{name: "negative distance", mutate: testutil.Field("distance", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing required fields")
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"distance": `)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing required fields")
	})
}
