package reservation

import (
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationConflict = errs.Mark(errs.New("car is already booked for the requested dates"), errs.ErrConflict)
	ErrInvalidTransition   = errs.New("invalid reservation status transition")
	ErrReservationClosed   = errs.New("reservation is cancelled")
)

// Reservation is never deleted; it only moves through its status lifecycle.
type Reservation struct {
	id             uuid.UUID
	clientID       uuid.UUID
	carID          uuid.UUID
	period         interval.Interval
	status         Status
	paymentStatus  PaymentStatus
	dailyRate      Money
	totalAmount    Money
	deposit        Money
	pickupLocation Location
	returnLocation Location
	notes          Note
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructReservation(
	id, clientID, carID uuid.UUID,
	period interval.Interval,
	status Status,
	paymentStatus PaymentStatus,
	dailyRate, totalAmount, deposit Money,
	pickupLocation, returnLocation Location,
	notes Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		clientID:       clientID,
		carID:          carID,
		period:         period,
		status:         status,
		paymentStatus:  paymentStatus,
		dailyRate:      dailyRate,
		totalAmount:    totalAmount,
		deposit:        deposit,
		pickupLocation: pickupLocation,
		returnLocation: returnLocation,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo moves the reservation along pending → confirmed → active → completed,
// or to cancelled from any state before completion.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return errs.Mark(errs.Newf("invalid reservation status %q", next), errs.ErrValidation)
	}
	if !r.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) ChangePaymentStatus(p PaymentStatus, now time.Time) error {
	if !p.IsValid() {
		return errs.Mark(errs.Newf("invalid payment status %q", p), errs.ErrValidation)
	}
	if r.status == StatusCancelled {
		return ErrReservationClosed
	}
	r.paymentStatus = p
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// IsOverdue is true when the car should already be back but the booking is still open.
func (r *Reservation) IsOverdue(now time.Time) bool {
	return r.status.IsOngoing() && r.period.End().Before(now)
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) ClientID() uuid.UUID          { return r.clientID }
func (r *Reservation) CarID() uuid.UUID             { return r.carID }
func (r *Reservation) Period() interval.Interval    { return r.period }
func (r *Reservation) Start() time.Time             { return r.period.Start() }
func (r *Reservation) End() time.Time               { return r.period.End() }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) DailyRate() Money             { return r.dailyRate }
func (r *Reservation) TotalAmount() Money           { return r.totalAmount }
func (r *Reservation) Deposit() Money               { return r.deposit }
func (r *Reservation) PickupLocation() Location     { return r.pickupLocation }
func (r *Reservation) ReturnLocation() Location     { return r.returnLocation }
func (r *Reservation) Notes() Note                  { return r.notes }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
