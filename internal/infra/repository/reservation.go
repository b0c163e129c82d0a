package repository

import (
	"context"

	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/infra/converter"
	"fleetdesk/internal/infra/readstore"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db    shared.DBTX
	reads *readstore.ReservationReadStore
}

func NewReservationRepository(db shared.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db, reads: readstore.NewReservationReadStore(db)}
}

// Create relies on the reservations_no_overlap constraint as the last line of
// defence; a violation comes back as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `INSERT INTO reservations (`+converter.ReservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		converter.ReservationArgs(res)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+converter.ReservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
	res, err := converter.ScanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByCar(ctx context.Context, carID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.reads.FindByCar(ctx, carID)
}

// UpdateState persists status and payment status, the only mutable fields.
func (r *ReservationRepository) UpdateState(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `UPDATE reservations
		SET status = $2, payment_status = $3, updated_at = $4
		WHERE id = $1`,
		res.ID(), res.Status().String(), res.PaymentStatus().String(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
