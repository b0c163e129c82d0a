package queries

import (
	"context"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, session shared.Session, carID uuid.UUID, start, end time.Time) (reservation.AvailabilityResult, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

// Check validates the interval before touching storage; an unknown car is a
// not-found error, a booked car is a normal negative result.
func (q *availabilityQueriesImpl) Check(
	ctx context.Context,
	_ shared.Session,
	carID uuid.UUID,
	start, end time.Time,
) (reservation.AvailabilityResult, error) {
	candidate, err := interval.New(start, end)
	if err != nil {
		return reservation.AvailabilityResult{}, err
	}

	var result reservation.AvailabilityResult
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		c, err := r.Cars().FindByID(ctx, carID)
		if err != nil {
			return mapNotFound(err, ErrCarNotFound)
		}
		existing, err := r.Reservations().FindByCar(ctx, carID)
		if err != nil {
			return err
		}
		result = reservation.CheckAvailability(c.Rate(), candidate, existing)
		return nil
	})
	if err != nil {
		return reservation.AvailabilityResult{}, err
	}
	return result, nil
}
