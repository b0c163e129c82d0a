//go:build e2e

package reservation_test

import (
	"net/http"

	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/dto/response"
	"fleetdesk/tests/common/dbtest"
	"fleetdesk/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestCatalog
// =============================================================================

func (s *ReservationSuite) TestCatalog() {
	s.Run("Normal case: cars and clients are listed", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		token := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/cars", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.Len(t, cars, 1)
		assert.Equal(t, carID, cars[0].ID)
		assert.Equal(t, "Toyota Corolla (ABC-123)", cars[0].DisplayName)
		assert.Equal(t, int64(5000), cars[0].PricePerDay)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/cars/"+carID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clients", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var clients []response.ClientResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &clients))
		require.Len(t, clients, 1)
		assert.Equal(t, "jane@example.com", clients[0].Email)
	})

	s.Run("Abnormal case: unknown car", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/cars/"+uuid.NewString(), nil, s.JWT.Token(t, user.RoleViewer))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
