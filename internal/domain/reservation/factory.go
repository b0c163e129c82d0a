package reservation

import (
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type Extras struct {
	Deposit        Money
	PickupLocation Location
	ReturnLocation Location
	Notes          Note
}

// Create builds a pending, unpaid reservation priced from the car's daily rate.
// When the car is taken it returns the negative availability result together
// with ErrReservationConflict so the caller can report the conflicts.
func (f *Factory) Create(
	car CarRate,
	clientID uuid.UUID,
	period interval.Interval,
	existing []*Reservation,
	extras Extras,
) (*Reservation, AvailabilityResult, error) {
	if period.IsZero() {
		return nil, AvailabilityResult{}, interval.ErrInvalidInterval
	}
	if extras.Deposit.Cents() < 0 {
		return nil, AvailabilityResult{}, ErrNegativeAmount
	}

	result := CheckAvailability(car, period, existing)
	if !result.Available {
		return nil, result, ErrReservationConflict
	}

	now := f.Clock.Now()
	return &Reservation{
		id:             uuid.New(),
		clientID:       clientID,
		carID:          car.ID,
		period:         period,
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		dailyRate:      result.Pricing.DailyRate,
		totalAmount:    result.Pricing.TotalAmount,
		deposit:        extras.Deposit,
		pickupLocation: extras.PickupLocation,
		returnLocation: extras.ReturnLocation,
		notes:          extras.Notes,
		createdAt:      now,
		updatedAt:      now,
	}, result, nil
}
