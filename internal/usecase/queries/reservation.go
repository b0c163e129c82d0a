package queries

import (
	"context"
	"time"

	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ClientName     string
	CarID          uuid.UUID
	CarName        string
	StartDate      time.Time
	EndDate        time.Time
	Status         reservation.Status
	PaymentStatus  reservation.PaymentStatus
	DailyRate      reservation.Money
	TotalAmount    reservation.Money
	Deposit        reservation.Money
	PickupLocation *string
	ReturnLocation *string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReservationQueries interface {
	Get(ctx context.Context, session shared.Session, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, _ shared.Session, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		v, err := LoadReservationView(ctx, r, id)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// LoadReservationView is shared with the write side for read-after-write.
func LoadReservationView(ctx context.Context, r shared.Reads, id uuid.UUID) (*ReservationView, error) {
	res, err := r.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrReservationNotFound)
	}
	c, err := r.Cars().FindByID(ctx, res.CarID())
	if err != nil {
		return nil, mapNotFound(err, ErrCarNotFound)
	}
	cl, err := r.Clients().FindByID(ctx, res.ClientID())
	if err != nil {
		return nil, mapNotFound(err, ErrClientNotFound)
	}
	return &ReservationView{
		ID:             res.ID(),
		ClientID:       res.ClientID(),
		ClientName:     cl.DisplayName(),
		CarID:          res.CarID(),
		CarName:        c.DisplayName(),
		StartDate:      res.Start(),
		EndDate:        res.End(),
		Status:         res.Status(),
		PaymentStatus:  res.PaymentStatus(),
		DailyRate:      res.DailyRate(),
		TotalAmount:    res.TotalAmount(),
		Deposit:        res.Deposit(),
		PickupLocation: res.PickupLocation().Ptr(),
		ReturnLocation: res.ReturnLocation().Ptr(),
		Notes:          res.Notes().String(),
		CreatedAt:      res.CreatedAt(),
		UpdatedAt:      res.UpdatedAt(),
	}, nil
}
