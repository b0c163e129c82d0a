//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckAvailability(t *testing.T) {
	carID := uuid.New()
	rate := reservation.CarRate{ID: carID, DailyRate: reservation.NewMoney(4500)}
	candidate := interval.MustNew(day(1, 3), day(1, 7))

	existingOn := func(status reservation.Status, start, end time.Time) *reservation.Reservation {
		return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CarID = carID
			b.Status = status
		}).Between(start, end).BuildDomain()
	}

	t.Run("confirmed overlap blocks the booking", func(t *testing.T) {
		existing := existingOn(reservation.StatusConfirmed, day(1, 1), day(1, 5))

		result := reservation.CheckAvailability(rate, candidate, []*reservation.Reservation{existing})

		assert.False(t, result.Available)
		assert.Equal(t, reservation.MessageUnavailable, result.Message)
		assert.Nil(t, result.Pricing)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, existing.ID(), result.Conflicts[0].ReservationID)
		assert.Equal(t, reservation.StatusConfirmed, result.Conflicts[0].Status)
		assert.Equal(t, existing.Period(), result.Conflicts[0].Period)
	})

	t.Run("cancelled reservations never block", func(t *testing.T) {
		existing := existingOn(reservation.StatusCancelled, day(1, 1), day(1, 10))

		result := reservation.CheckAvailability(rate, candidate, []*reservation.Reservation{existing})

		assert.True(t, result.Available)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		before := existingOn(reservation.StatusActive, day(1, 1), day(1, 3))
		after := existingOn(reservation.StatusPending, day(1, 7), day(1, 9))

		result := reservation.CheckAvailability(rate, candidate, []*reservation.Reservation{before, after})

		assert.True(t, result.Available)
	})

	t.Run("other cars are ignored", func(t *testing.T) {
		other := builder.NewReservationBuilder().Between(day(1, 1), day(1, 10)).BuildDomain()

		result := reservation.CheckAvailability(rate, candidate, []*reservation.Reservation{other, nil})

		assert.True(t, result.Available)
	})

	t.Run("pricing uses ceil of days", func(t *testing.T) {
		partial := interval.MustNew(day(1, 3), day(1, 5).Add(2*time.Hour))

		result := reservation.CheckAvailability(rate, partial, nil)

		require.True(t, result.Available)
		assert.Equal(t, reservation.MessageAvailable, result.Message)
		expected := &reservation.Pricing{
			DailyRate:   reservation.NewMoney(4500),
			TotalDays:   3,
			TotalAmount: reservation.NewMoney(13500),
		}
		if diff := cmp.Diff(expected, result.Pricing, cmp.AllowUnexported(reservation.Money{})); diff != "" {
			t.Errorf("pricing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("conflicts are sorted by start", func(t *testing.T) {
		late := existingOn(reservation.StatusConfirmed, day(1, 6), day(1, 8))
		early := existingOn(reservation.StatusPending, day(1, 2), day(1, 4))
		mid := existingOn(reservation.StatusActive, day(1, 4), day(1, 6))

		result := reservation.CheckAvailability(rate, candidate, []*reservation.Reservation{late, early, mid})

		require.Len(t, result.Conflicts, 3)
		got := []uuid.UUID{result.Conflicts[0].ReservationID, result.Conflicts[1].ReservationID, result.Conflicts[2].ReservationID}
		assert.Equal(t, []uuid.UUID{early.ID(), mid.ID(), late.ID()}, got)
	})
}
