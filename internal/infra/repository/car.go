package repository

import (
	"context"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/infra/converter"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarRepository struct {
	db shared.DBTX
}

func NewCarRepository(db shared.DBTX) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	row := r.db.QueryRow(ctx, `SELECT `+converter.CarColumns+` FROM cars WHERE id = $1 FOR UPDATE`, id)
	c, err := converter.ScanCar(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock car", err)
	}
	return c, nil
}
