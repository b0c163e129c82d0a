package api

import (
	"net/http"

	reqdto "fleetdesk/internal/handler/dto/request"
	resdto "fleetdesk/internal/handler/dto/response"
	"fleetdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check car availability
// @Description A booked car is a 200 with available=false and the conflicting reservations.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AvailabilityCheckRequest true "Candidate booking"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/check [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	result, err := h.q.Check(c.Request.Context(), s, req.CarID, req.StartDate, req.EndDate)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}
