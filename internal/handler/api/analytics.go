package api

import (
	"net/http"

	reqdto "fleetdesk/internal/handler/dto/request"
	resdto "fleetdesk/internal/handler/dto/response"
	"fleetdesk/internal/usecase/queries"
	"fleetdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q        queries.AnalyticsQueries
	overview queries.OverviewLoader
}

func NewAnalyticsHandler(q queries.AnalyticsQueries, overview queries.OverviewLoader) *AnalyticsHandler {
	return &AnalyticsHandler{q: q, overview: overview}
}

// bind reads the shared analytics query string; false means the request was aborted.
func (h *AnalyticsHandler) bind(c *gin.Context) (shared.Session, queries.AnalyticsParams, bool) {
	s, ok := session(c)
	if !ok {
		return shared.Session{}, queries.AnalyticsParams{}, false
	}
	var req reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithBindError(c, err)
		return shared.Session{}, queries.AnalyticsParams{}, false
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithUsecaseError(c, err)
		return shared.Session{}, queries.AnalyticsParams{}, false
	}
	return s, params, true
}

// @Summary Dashboard metrics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "RFC 3339 period start (default: current month)"
// @Param end_date query string false "RFC 3339 period end"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	m, err := h.q.Dashboard(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(m))
}

// @Summary Reservation analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Param top_n query int false "Size of the popular cars and top clients lists"
// @Success 200 {object} resdto.ReservationAnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/reservations [get]
func (h *AnalyticsHandler) Reservations(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	a, err := h.q.Reservations(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationAnalytics(a))
}

// @Summary Financial report
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "RFC 3339 period start"
// @Param end_date query string false "RFC 3339 period end"
// @Param granularity query string false "day, week or month"
// @Success 200 {object} resdto.FinancialResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/financial [get]
func (h *AnalyticsHandler) Financial(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	f, err := h.q.Financial(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinancial(f))
}

// @Summary Car utilization
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "RFC 3339 period start"
// @Param end_date query string false "RFC 3339 period end"
// @Success 200 {object} resdto.UtilizationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/utilization [get]
func (h *AnalyticsHandler) Utilization(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	u, err := h.q.Utilization(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUtilization(u))
}

// @Summary Upcoming pickups, returns and overdue returns
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param horizon_days query int false "Look-ahead window in days (default 7)"
// @Success 200 {object} resdto.UpcomingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/upcoming [get]
func (h *AnalyticsHandler) Upcoming(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	u, err := h.q.Upcoming(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpcoming(u))
}

// @Summary Every analytics view at once
// @Description Views that fail are null and listed in errors. A newer overview request from the same user makes this one return 409.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OverviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	s, params, ok := h.bind(c)
	if !ok {
		return
	}
	o, err := h.overview.Load(c.Request.Context(), s, params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverview(o))
}
