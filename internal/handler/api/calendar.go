package api

import (
	"net/http"
	"time"

	reqdto "fleetdesk/internal/handler/dto/request"
	resdto "fleetdesk/internal/handler/dto/response"
	"fleetdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Month calendar
// @Description 42 day cells starting on the Sunday on or before the 1st.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	grid, err := h.q.Month(c.Request.Context(), s, req.Year, time.Month(req.Month))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGrid(grid))
}
