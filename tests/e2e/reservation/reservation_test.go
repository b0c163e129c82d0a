//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/dto/request"
	"fleetdesk/internal/handler/dto/response"
	"fleetdesk/tests/common/dbtest"
	"fleetdesk/tests/common/httptest"
	"fleetdesk/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/%s"
	statusURL       = "/api/reservations/%s/status"
	paymentURL      = "/api/reservations/%s/payment"
	availabilityURL = "/api/availability/check"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func nextWeek() time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 7).Add(10 * time.Hour)
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Conflicts []response.ConflictResponse `json:"conflicts"`
	} `json:"detail"`
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: operator books a free car", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()

		body := request.CreateReservationRequest{
			CarID:         carID,
			ClientID:      clientID,
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 3),
			DepositAmount: 10000,
		}
		token := s.JWT.Token(t, user.RoleOperator)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotNil(t, created.Reservation)
		require.NotNil(t, created.Pricing)

		assert.Equal(t, "pending", created.Reservation.Status)
		assert.Equal(t, "unpaid", created.Reservation.PaymentStatus)
		assert.Equal(t, "Toyota Corolla (ABC-123)", created.Reservation.CarName)
		assert.Equal(t, "Jane Doe", created.Reservation.ClientName)
		assert.Equal(t, 3, created.Pricing.TotalDays)
		assert.Equal(t, int64(15000), created.Pricing.TotalAmount)
		assert.Equal(t, int64(15000), created.Reservation.TotalAmount)
		assert.Equal(t, fmt.Sprintf(reservationURL, created.Reservation.ID), w.Header().Get("Location"))

		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "reservation_created"))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.Reservation.ID), nil, s.JWT.Token(t, user.RoleViewer))
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		assert.Equal(t, created.Reservation.ID, detail.ID)
		assert.True(t, detail.StartDate.Equal(start))
	})

	s.Run("Abnormal case: overlapping booking returns conflicts", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Honda", "Civic", "XYZ-999", 4000)
		clientID := dbtest.CreateTestClient(t, s.DB, "John Roe", "john@example.com")
		start := nextWeek()
		existingID := dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 4), "confirmed")

		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start.AddDate(0, 0, 2),
			EndDate:   start.AddDate(0, 0, 6),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var res errorBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Detail.Conflicts, 1)
		assert.Equal(t, existingID, res.Detail.Conflicts[0].ReservationID)
		assert.Equal(t, "confirmed", res.Detail.Conflicts[0].Status)
		assert.NotEmpty(t, res.Error.Message)

		assert.Zero(t, dbtest.CountNotificationJobs(t, s.DB, "reservation_created"))
	})

	s.Run("Boundary case: booking starting at the previous end is accepted", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Mazda", "3", "MAZ-003", 4500)
		clientID := dbtest.CreateTestClient(t, s.DB, "Ann Lee", "ann@example.com")
		start := nextWeek()
		end := start.AddDate(0, 0, 2)
		dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, end, "active")

		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: end,
			EndDate:   end.AddDate(0, 0, 1),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleAdmin))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Boundary case: cancelled reservations never block", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Kia", "Rio", "KIA-111", 3000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Bo Chen", "bo@example.com")
		start := nextWeek()
		dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 3), "cancelled")

		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 3),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: inverted period is rejected", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Yaris", "TOY-222", 3500)
		clientID := dbtest.CreateTestClient(t, s.DB, "Cy Park", "cy@example.com")
		start := nextWeek()

		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.Add(-time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: unknown car returns 404", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Di Ross", "di@example.com")
		start := nextWeek()

		body := request.CreateReservationRequest{
			CarID:     uuid.New(),
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 1),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: viewer cannot book", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Ford", "Focus", "FOR-777", 4200)
		clientID := dbtest.CreateTestClient(t, s.DB, "Ed Wu", "ed@example.com")
		start := nextWeek()

		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 1),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.JWT.Token(t, user.RoleViewer))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Abnormal case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]string{}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestIdempotentCreate
// =============================================================================

func (s *ReservationSuite) TestIdempotentCreate() {
	s.Run("Normal case: replay returns the stored reservation", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 2),
		}
		token := s.JWT.Token(t, user.RoleOperator)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		var created response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &created))

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token, headers)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())
		assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))

		var replayed response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &replayed))
		require.NotNil(t, replayed.Reservation)
		assert.Equal(t, created.Reservation.ID, replayed.Reservation.ID)

		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "reservation_created"))
	})

	s.Run("Abnormal case: key reused with a different body", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		body := request.CreateReservationRequest{
			CarID:     carID,
			ClientID:  clientID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 2),
		}
		token := s.JWT.Token(t, user.RoleOperator)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		body.StartDate = start.AddDate(0, 0, 10)
		body.EndDate = start.AddDate(0, 0, 11)
		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token, headers)
		require.Equal(t, http.StatusConflict, second.Code, second.Body.String())
	})

	s.Run("Abnormal case: malformed key", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			map[string]string{}, s.JWT.Token(t, user.RoleOperator), map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid idempotency key format")
	})
}

// =============================================================================
// TestChangeStatus / TestChangePayment
// =============================================================================

func (s *ReservationSuite) TestChangeStatus() {
	s.Run("Normal case: confirmed reservation is picked up", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		id := dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 2), "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
			request.ChangeStatusRequest{Status: "active"}, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, "active", res.Status)
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "reservation_status_changed"))
	})

	s.Run("Abnormal case: completed reservation cannot be reopened", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		id := dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 2), "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
			request.ChangeStatusRequest{Status: "active"}, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Zero(t, dbtest.CountNotificationJobs(t, s.DB, "reservation_status_changed"))
	})

	s.Run("Abnormal case: unknown reservation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, uuid.New()),
			request.ChangeStatusRequest{Status: "cancelled"}, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: bad path id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, "nope"),
			request.ChangeStatusRequest{Status: "cancelled"}, s.JWT.Token(t, user.RoleOperator))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationSuite) TestChangePayment() {
	s.Run("Normal case: payment marked as paid", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		id := dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 2), "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(paymentURL, id),
			request.ChangePaymentRequest{PaymentStatus: "paid"}, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, "paid", res.PaymentStatus)
		assert.Equal(t, "confirmed", res.Status)
	})

	s.Run("Abnormal case: cancelled reservation is closed", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		id := dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 2), "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(paymentURL, id),
			request.ChangePaymentRequest{PaymentStatus: "paid"}, s.JWT.Token(t, user.RoleOperator))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAvailabilityCheck
// =============================================================================

func (s *ReservationSuite) TestAvailabilityCheck() {
	s.Run("Normal case: free car is priced", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		start := nextWeek()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, request.AvailabilityCheckRequest{
			CarID:     carID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 4),
		}, s.JWT.Token(t, user.RoleViewer))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.True(t, res.Available)
		require.NotNil(t, res.Pricing)
		assert.Equal(t, int64(5000), res.Pricing.DailyRate)
		assert.Equal(t, 4, res.Pricing.TotalDays)
		assert.Equal(t, int64(20000), res.Pricing.TotalAmount)
		assert.Empty(t, res.Conflicts)
	})

	s.Run("Normal case: booked car reports conflicts without an error status", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla", "ABC-123", 5000)
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe", "jane@example.com")
		start := nextWeek()
		dbtest.CreateTestReservation(t, s.DB, carID, clientID, start, start.AddDate(0, 0, 2), "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, request.AvailabilityCheckRequest{
			CarID:     carID,
			StartDate: start.AddDate(0, 0, 1),
			EndDate:   start.AddDate(0, 0, 3),
		}, s.JWT.Token(t, user.RoleViewer))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.False(t, res.Available)
		assert.Nil(t, res.Pricing)
		assert.Len(t, res.Conflicts, 1)
	})
}
