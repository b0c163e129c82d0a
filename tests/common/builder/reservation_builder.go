//go:build unit || e2e

package builder

import (
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/handler/dto/request"
	"fleetdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	CarID          uuid.UUID
	Start          time.Time
	End            time.Time
	Status         reservation.Status
	PaymentStatus  reservation.PaymentStatus
	DailyRate      int64
	TotalAmount    int64
	Deposit        int64
	PickupLocation string
	ReturnLocation string
	Notes          string
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:            uuid.New(),
		ClientID:      uuid.New(),
		CarID:         uuid.New(),
		Start:         start,
		End:           start.AddDate(0, 0, 4),
		Status:        reservation.StatusConfirmed,
		PaymentStatus: reservation.PaymentUnpaid,
		DailyRate:     5000,
		TotalAmount:   20000,
		Deposit:       10000,
		CreatedAt:     start.AddDate(0, 0, -7),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Between sets the period, keeping the rest of the builder as is.
func (b *ReservationBuilder) Between(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		b.ClientID,
		b.CarID,
		interval.MustNew(b.Start, b.End),
		b.Status,
		b.PaymentStatus,
		reservation.NewMoney(b.DailyRate),
		reservation.NewMoney(b.TotalAmount),
		reservation.NewMoney(b.Deposit),
		reservation.NewLocation(b.PickupLocation),
		reservation.NewLocation(b.ReturnLocation),
		reservation.NewNote(b.Notes),
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequest() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		CarID:          b.CarID,
		ClientID:       b.ClientID,
		StartDate:      b.Start,
		EndDate:        b.End,
		DepositAmount:  b.Deposit,
		PickupLocation: optional(b.PickupLocation),
		ReturnLocation: optional(b.ReturnLocation),
		Notes:          optional(b.Notes),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             b.ID,
		ClientID:       b.ClientID,
		ClientName:     "Jane Doe",
		CarID:          b.CarID,
		CarName:        "Toyota Corolla",
		StartDate:      b.Start,
		EndDate:        b.End,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		DailyRate:      reservation.NewMoney(b.DailyRate),
		TotalAmount:    reservation.NewMoney(b.TotalAmount),
		Deposit:        reservation.NewMoney(b.Deposit),
		PickupLocation: optional(b.PickupLocation),
		ReturnLocation: optional(b.ReturnLocation),
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
