//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fleetdesk/internal/domain/calendar"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/api"
	"fleetdesk/internal/usecase/queries"
	"fleetdesk/internal/usecase/shared"
	"fleetdesk/tests/common/httptest"
	"fleetdesk/tests/common/testutil"
	queriesmock "fleetdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCalendar     *queriesmock.MockCalendarQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCalendar = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	auth := fakeAuth(shared.NewSession(uuid.New(), user.RoleViewer))
	s.router.GET("/calendar", auth, api.NewCalendarHandler(s.mockCalendar).Month)
	s.router.POST("/availability/check", auth, api.NewAvailabilityHandler(s.mockAvailability).Check)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestMonth() {
	s.Run("success: returns 42 cells", func() {
		today := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
		grid := calendar.Project(2024, time.February, today, time.UTC, nil)
		s.mockCalendar.EXPECT().Month(gomock.Any(), gomock.Any(), 2024, time.February).Return(grid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar?year=2024&month=2", nil, "bearer-token")

		var body struct {
			Year  int `json:"year"`
			Month int `json:"month"`
			Cells []struct {
				Date    string `json:"date"`
				IsToday bool   `json:"is_today"`
			} `json:"cells"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2024, body.Year)
		s.Equal(2, body.Month)
		s.Require().Len(body.Cells, 42)
		s.Equal("2024-01-28", body.Cells[0].Date)
		s.Equal("2024-03-09", body.Cells[41].Date)
		s.True(body.Cells[18].IsToday)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		for _, query := range []string{"", "?year=2024", "?year=2024&month=13", "?year=2024&month=0", "?year=abc&month=2"} {
			s.Run(query, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar"+query, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *CalendarHandlerTestSuite) TestAvailabilityCheck() {
	carID := uuid.New()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"car_id":     carID.String(),
		"start_date": start.Format(time.RFC3339),
		"end_date":   end.Format(time.RFC3339),
	}

	s.Run("success: free car is priced", func() {
		pricing := reservation.QuotePrice(reservation.NewMoney(5000), interval.MustNew(start, end))
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any(), carID, start, end).
			Return(reservation.AvailabilityResult{Available: true, Message: reservation.MessageAvailable, Pricing: &pricing}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/availability/check", reqBody, "bearer-token")

		var body struct {
			Available bool `json:"available"`
			Pricing   struct {
				TotalDays   int   `json:"total_days"`
				TotalAmount int64 `json:"total_amount"`
			} `json:"pricing"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(3, body.Pricing.TotalDays)
		s.Equal(int64(15000), body.Pricing.TotalAmount)
	})

	s.Run("success: booked car is a 200 with conflicts", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any(), carID, start, end).
			Return(reservation.AvailabilityResult{
				Message: reservation.MessageUnavailable,
				Conflicts: []reservation.Conflict{{
					ReservationID: uuid.New(),
					Period:        interval.MustNew(start, end),
					Status:        reservation.StatusActive,
				}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/availability/check", reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["available"])
		s.Len(body["conflicts"], 1)
		s.NotContains(body, "pricing")
	})

	s.Run("error: 404 Not Found for unknown car", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any(), carID, start, end).
			Return(reservation.AvailabilityResult{}, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/availability/check", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "car not found")
	})

	s.Run("error: 400 Bad Request without car_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/availability/check",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("car_id", nil)), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
