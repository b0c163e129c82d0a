package converter

import (
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ReservationColumns = `id, client_id, car_id, start_date, end_date, status, payment_status,
	daily_rate_cents, total_amount_cents, deposit_cents, pickup_location, return_location, notes,
	created_at, updated_at`

// ScanReservation reads one row selected with ReservationColumns.
func ScanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, clientID, carID          uuid.UUID
		start, end                   time.Time
		status, paymentStatus, notes string
		dailyRate, total, deposit    int64
		pickup, dropoff              pgtype.Text
		createdAt, updatedAt         time.Time
	)
	err := row.Scan(&id, &clientID, &carID, &start, &end, &status, &paymentStatus,
		&dailyRate, &total, &deposit, &pickup, &dropoff, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	period, err := interval.New(start, end)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has a corrupt period", id)
	}
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", id)
	}
	ps, err := reservation.ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", id)
	}

	return reservation.ReconstructReservation(
		id, clientID, carID,
		period,
		st, ps,
		reservation.NewMoney(dailyRate),
		reservation.NewMoney(total),
		reservation.NewMoney(deposit),
		reservation.NewLocation(pgconv.StringFromPgtype(pickup)),
		reservation.NewLocation(pgconv.StringFromPgtype(dropoff)),
		reservation.NewNote(notes),
		createdAt, updatedAt,
	), nil
}

// ReservationArgs matches the column order of ReservationColumns.
func ReservationArgs(r *reservation.Reservation) []any {
	return []any{
		r.ID(), r.ClientID(), r.CarID(), r.Start(), r.End(),
		r.Status().String(), r.PaymentStatus().String(),
		r.DailyRate().Cents(), r.TotalAmount().Cents(), r.Deposit().Cents(),
		pgconv.StringToPgtype(r.PickupLocation().String()),
		pgconv.StringToPgtype(r.ReturnLocation().String()),
		r.Notes().String(),
		r.CreatedAt(), r.UpdatedAt(),
	}
}

func CollectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	defer rows.Close()
	var out []*reservation.Reservation
	for rows.Next() {
		r, err := ScanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
