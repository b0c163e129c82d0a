package readstore

import (
	"context"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/infra/converter"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db shared.DBTX
}

func NewReservationReadStore(db shared.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := s.db.QueryRow(ctx, `SELECT `+converter.ReservationColumns+` FROM reservations WHERE id = $1`, id)
	r, err := converter.ScanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r, nil
}

// FindByCar returns every reservation of the car, cancelled ones included.
func (s *ReservationReadStore) FindByCar(ctx context.Context, carID uuid.UUID) ([]*reservation.Reservation, error) {
	return s.list(ctx, "failed to find reservations by car",
		`SELECT `+converter.ReservationColumns+` FROM reservations WHERE car_id = $1 ORDER BY start_date, id`, carID)
}

// FindIntersecting uses the same half-open overlap as the domain.
func (s *ReservationReadStore) FindIntersecting(ctx context.Context, period interval.Interval) ([]*reservation.Reservation, error) {
	return s.list(ctx, "failed to find reservations in period",
		`SELECT `+converter.ReservationColumns+` FROM reservations
		 WHERE tstzrange(start_date, end_date, '[)') && tstzrange($1, $2, '[)')
		 ORDER BY start_date, id`, period.Start(), period.End())
}

func (s *ReservationReadStore) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	return s.list(ctx, "failed to list reservations",
		`SELECT `+converter.ReservationColumns+` FROM reservations ORDER BY start_date, id`)
}

func (s *ReservationReadStore) list(ctx context.Context, msg, query string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	out, err := converter.CollectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}
