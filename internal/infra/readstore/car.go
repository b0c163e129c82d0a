package readstore

import (
	"context"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/infra/converter"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarReadStore struct {
	db shared.DBTX
}

func NewCarReadStore(db shared.DBTX) *CarReadStore {
	return &CarReadStore{db: db}
}

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	row := s.db.QueryRow(ctx, `SELECT `+converter.CarColumns+` FROM cars WHERE id = $1`, id)
	c, err := converter.ScanCar(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return c, nil
}

func (s *CarReadStore) FindAll(ctx context.Context) ([]*car.Car, error) {
	rows, err := s.db.Query(ctx, `SELECT `+converter.CarColumns+` FROM cars ORDER BY brand, model, license_plate`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	cars, err := converter.CollectCars(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cars", err)
	}
	return cars, nil
}
