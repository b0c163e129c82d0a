//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fleetdesk/internal/domain/analytics"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/api"
	"fleetdesk/internal/usecase/queries"
	"fleetdesk/internal/usecase/shared"
	"fleetdesk/tests/common/httptest"
	queriesmock "fleetdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockAnalyticsQueries
	mockOverview *queriesmock.MockOverviewLoader
	handler      *api.AnalyticsHandler
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.mockOverview = queriesmock.NewMockOverviewLoader(s.mockCtrl)
	s.handler = api.NewAnalyticsHandler(s.mockQueries, s.mockOverview)

	auth := fakeAuth(shared.NewSession(uuid.New(), user.RoleViewer))
	s.router.GET("/analytics/dashboard", auth, s.handler.Dashboard)
	s.router.GET("/analytics/financial", auth, s.handler.Financial)
	s.router.GET("/analytics/upcoming", auth, s.handler.Upcoming)
	s.router.GET("/analytics/overview", auth, s.handler.Overview)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestDashboard() {
	period := interval.MonthRange(2024, time.February, time.UTC)

	s.Run("success: amounts are minor units", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), gomock.Any(), queries.AnalyticsParams{Granularity: analytics.GranularityMonth}).
			Return(analytics.DashboardMetrics{
				Period:             period,
				TotalCars:          4,
				AvailableCars:      3,
				ActiveReservations: 2,
				TotalRevenue:       reservation.NewMoney(12345),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/dashboard", nil, "bearer-token")

		var body struct {
			Period struct {
				StartDate time.Time `json:"start_date"`
			} `json:"period"`
			TotalCars          int   `json:"total_cars"`
			AvailableCars      int   `json:"available_cars"`
			ActiveReservations int   `json:"active_reservations"`
			TotalRevenue       int64 `json:"total_revenue"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.TotalCars)
		s.Equal(3, body.AvailableCars)
		s.Equal(2, body.ActiveReservations)
		s.Equal(int64(12345), body.TotalRevenue)
		s.True(period.Start().Equal(body.Period.StartDate))
	})

	s.Run("success: explicit period is passed through", func() {
		var got queries.AnalyticsParams
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Session, p queries.AnalyticsParams) (analytics.DashboardMetrics, error) {
				got = p
				return analytics.DashboardMetrics{Period: period}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics/dashboard?start_date=2024-01-01T00:00:00Z&end_date=2024-04-01T00:00:00Z", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Require().NotNil(got.Start)
		s.Require().NotNil(got.End)
		s.True(got.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		s.True(got.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func (s *AnalyticsHandlerTestSuite) TestFinancial() {
	s.Run("error: 400 Bad Request on unknown granularity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/financial?granularity=hourly", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: granularity is parsed", func() {
		s.mockQueries.EXPECT().Financial(gomock.Any(), gomock.Any(), queries.AnalyticsParams{Granularity: analytics.GranularityWeek}).
			Return(analytics.FinancialReport{Granularity: analytics.GranularityWeek}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/financial?granularity=week", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("week", body["granularity"])
	})
}

func (s *AnalyticsHandlerTestSuite) TestUpcoming() {
	s.Run("success: horizon is given in days", func() {
		params := queries.AnalyticsParams{Granularity: analytics.GranularityMonth, Horizon: 72 * time.Hour}
		s.mockQueries.EXPECT().Upcoming(gomock.Any(), gomock.Any(), params).
			Return(analytics.UpcomingEvents{Horizon: 72 * time.Hour}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/upcoming?horizon_days=3", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(72, body["horizon_hours"])
	})

	s.Run("error: 400 Bad Request on horizon out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/upcoming?horizon_days=400", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AnalyticsHandlerTestSuite) TestOverview() {
	s.Run("success: failed views are named and left null", func() {
		dashboard := analytics.DashboardMetrics{TotalCars: 2}
		s.mockOverview.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&queries.Overview{
				Dashboard: &dashboard,
				Errors:    map[queries.ViewName]error{queries.ViewFinancial: context.DeadlineExceeded},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/overview", nil, "bearer-token")

		var body struct {
			Dashboard *struct {
				TotalCars int `json:"total_cars"`
			} `json:"dashboard"`
			Financial *struct{}         `json:"financial"`
			Errors    map[string]string `json:"errors"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Dashboard)
		s.Equal(2, body.Dashboard.TotalCars)
		s.Nil(body.Financial)
		s.Equal(map[string]string{"financial": "failed to load financial"}, body.Errors)
	})

	s.Run("error: 409 Conflict when superseded", func() {
		s.mockOverview.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrSuperseded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/overview", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Superseded")
	})
}
