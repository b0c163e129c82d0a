//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/usecase/queries"
	"fleetdesk/internal/usecase/shared"
	"fleetdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Check(t *testing.T) {
	session := shared.NewSession(uuid.New(), user.RoleViewer)
	carEntity := builder.NewCarBuilder().BuildDomain()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)

	t.Run("free car is priced", func(t *testing.T) {
		m := newReadMocks(gomock.NewController(t))
		m.cars.EXPECT().FindByID(gomock.Any(), carEntity.ID()).Return(carEntity, nil)
		m.reservations.EXPECT().FindByCar(gomock.Any(), carEntity.ID()).Return(nil, nil)

		result, err := queries.NewAvailabilityQueries(m.uow).Check(context.Background(), session, carEntity.ID(), start, end)
		require.NoError(t, err)

		assert.True(t, result.Available)
		assert.Equal(t, reservation.MessageAvailable, result.Message)
		require.NotNil(t, result.Pricing)
		assert.Equal(t, 3, result.Pricing.TotalDays)
		assert.Equal(t, int64(15000), result.Pricing.TotalAmount.Cents())
	})

	t.Run("booked car lists conflicts and cancelled bookings are ignored", func(t *testing.T) {
		m := newReadMocks(gomock.NewController(t))
		onCar := func(b *builder.ReservationBuilder) { b.CarID = carEntity.ID() }
		confirmed := builder.NewReservationBuilder().With(onCar).Between(start.AddDate(0, 0, 1), end.AddDate(0, 0, 1)).BuildDomain()
		cancelled := builder.NewReservationBuilder().With(onCar).
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled }).
			Between(start, end).BuildDomain()

		m.cars.EXPECT().FindByID(gomock.Any(), carEntity.ID()).Return(carEntity, nil)
		m.reservations.EXPECT().FindByCar(gomock.Any(), carEntity.ID()).
			Return([]*reservation.Reservation{cancelled, confirmed}, nil)

		result, err := queries.NewAvailabilityQueries(m.uow).Check(context.Background(), session, carEntity.ID(), start, end)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Nil(t, result.Pricing)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, confirmed.ID(), result.Conflicts[0].ReservationID)
	})

	t.Run("unknown car is not found", func(t *testing.T) {
		m := newReadMocks(gomock.NewController(t))
		id := uuid.New()
		m.cars.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("car not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewAvailabilityQueries(m.uow).Check(context.Background(), session, id, start, end)
		assert.ErrorIs(t, err, queries.ErrCarNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("inverted interval never reaches storage", func(t *testing.T) {
		m := newReadMocks(gomock.NewController(t))

		_, err := queries.NewAvailabilityQueries(m.uow).Check(context.Background(), session, carEntity.ID(), end, start)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
