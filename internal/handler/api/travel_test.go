//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"travel-cost-service/internal/handler/api"
	reqdto "travel-cost-service/internal/handler/dto/request"
	resdto "travel-cost-service/internal/handler/dto/response"
	"travel-cost-service/internal/usecase/commands"
	"travel-cost-service/internal/usecase/queries"
	"travel-cost-service/tests/common/httptest"
	"travel-cost-service/tests/common/testutil"
	commandsmock "travel-cost-service/tests/mock/commands"
	queriesmock "travel-cost-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TravelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTravelCommands
	mockQueries  *queriesmock.MockTravelQueries
	handler      *api.TravelHandler
}

func (s *TravelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTravelCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTravelQueries(s.mockCtrl)
	s.handler = api.NewTravelHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/calculate", s.handler.Calculate)
	s.router.GET("/records", s.handler.Records)
	s.router.GET("/records/:id", s.handler.Record)
}

func (s *TravelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTravelHandlerSuite(t *testing.T) {
	suite.Run(t, new(TravelHandlerTestSuite))
}

func validCalculateBody() reqdto.CalculateTravelCostRequest {
	rate := 30.0
	return reqdto.CalculateTravelCostRequest{
		StartPostcode: "SW1A 1AA",
		EndPostcode:   "EC1A 1BB",
		BaseRate:      &rate,
	}
}

// ================================================================================
// TestCalculate
// ================================================================================

func (s *TravelHandlerTestSuite) TestCalculate() {
	url := "/calculate"

	reqBody := validCalculateBody()
	expectedResult := &commands.CalculateTravelResult{
		RecordID:      uuid.New(),
		TravelTime:    600,
		TotalCost:     35,
		TimeBasedCost: 5,
		CostPerMinute: 0.5,
	}

	s.Run("success: returns 200 OK with cost breakdown", func() {
		s.mockCommands.EXPECT().Calculate(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.TravelCostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(600, response.TravelTime)
		s.InDelta(35.0, response.TotalCost, 1e-9)
		s.InDelta(5.0, response.TimeBasedCost, 1e-9)
		s.InDelta(0.5, response.CostPerMinute, 1e-9)
	})

	s.Run("success: zero base rate is accepted", func() {
		s.mockCommands.EXPECT().Calculate(gomock.Any(), gomock.Any()).
			Return(&commands.CalculateTravelResult{TravelTime: 600}, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("baseRate", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: startPostcode", mutate: testutil.Field("startPostcode", nil)},
			{name: "missing field: endPostcode", mutate: testutil.Field("endPostcode", nil)},
			{name: "missing field: baseRate", mutate: testutil.Field("baseRate", nil)},
			{name: "empty startPostcode", mutate: testutil.Field("startPostcode", "")},
			{name: "negative baseRate", mutate: testutil.Field("baseRate", -1)},
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
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"startPostcode": `)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing required fields")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid start postcode",
				commandsError:  commands.ErrInvalidStartPostcode,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid start postcode",
			},
			{
				name:           "invalid end postcode",
				commandsError:  commands.ErrInvalidEndPostcode,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid end postcode",
			},
			{
				name:           "route lookup failed",
				commandsError:  errors.New("route lookup failed: ZERO_RESULTS"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "ZERO_RESULTS",
			},
			{
				name:           "persistence failed",
				commandsError:  errors.New("failed to insert travel record"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "failed to insert travel record",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Calculate(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("success: passes normalized request through to the usecase", func() {
		s.mockCommands.EXPECT().Calculate(gomock.Any(), commands.CalculateTravelRequest{
			StartPostcode: "SW1A 1AA",
			EndPostcode:   "EC1A 1BB",
			BaseRate:      30,
		}).Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestRecords
// ================================================================================

func (s *TravelHandlerTestSuite) TestRecords() {
	url := "/records"

	items := []*queries.TravelRecordView{
		{
			ID:            uuid.New(),
			StartPostcode: "SW1A 1AA",
			EndPostcode:   "EC1A 1BB",
			BaseRate:      30,
			TravelTime:    600,
			TotalCost:     35,
			CreatedAt:     time.Now(),
		},
		{
			ID:            uuid.New(),
			StartPostcode: "M1 1AE",
			EndPostcode:   "B33 8TH",
			BaseRate:      20,
			TravelTime:    7200,
			TotalCost:     60,
			CreatedAt:     time.Now().Add(-time.Hour),
		},
	}

	s.Run("success: returns recent records", func() {
		s.mockQueries.EXPECT().RecentRecords(gomock.Any(), queries.DefaultLimit).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		records, ok := response["records"].([]any)
		s.True(ok)
		s.Equal(len(items), len(records))
	})

	s.Run("success: limit query param is forwarded", func() {
		s.mockQueries.EXPECT().RecentRecords(gomock.Any(), 5).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil)

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		records, ok := response["records"].([]any)
		s.True(ok)
		s.Equal(1, len(records))
	})

	s.Run("success: empty store yields an empty list", func() {
		s.mockQueries.EXPECT().RecentRecords(gomock.Any(), queries.DefaultLimit).
			Return([]*queries.TravelRecordView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response map[string][]resdto.TravelRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response["records"])
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().RecentRecords(gomock.Any(), queries.DefaultLimit).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "database error")
	})
}

// ================================================================================
// TestRecord
// ================================================================================

func (s *TravelHandlerTestSuite) TestRecord() {
	recordID := uuid.New()
	url := "/records/" + recordID.String()

	view := &queries.TravelRecordView{
		ID:            recordID,
		StartPostcode: "SW1A 1AA",
		EndPostcode:   "EC1A 1BB",
		BaseRate:      30,
		TravelTime:    600,
		TotalCost:     35,
		CreatedAt:     time.Now(),
	}

	s.Run("success: returns 200 OK with the record", func() {
		s.mockQueries.EXPECT().RecordByID(gomock.Any(), recordID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.TravelRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(recordID.String(), response.ID)
		s.Equal("SW1A 1AA", response.StartPostcode)
		s.Equal(600, response.TravelTime)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid record id")
	})

	s.Run("error: 404 Not Found for missing record", func() {
		s.mockQueries.EXPECT().RecordByID(gomock.Any(), recordID).
			Return(nil, queries.ErrRecordNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "record not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().RecordByID(gomock.Any(), recordID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "database error")
	})
}
