package api

import (
	"net/http"

	resdto "fleetdesk/internal/handler/dto/response"
	"fleetdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CarResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cars [get]
func (h *CatalogHandler) ListCars(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	cars, err := h.q.ListCars(c.Request.Context(), s)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCars(cars))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CatalogHandler) GetCar(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, err := h.q.GetCar(c.Request.Context(), s, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(car))
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Router /api/clients [get]
func (h *CatalogHandler) ListClients(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	clients, err := h.q.ListClients(c.Request.Context(), s)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClients(clients))
}
