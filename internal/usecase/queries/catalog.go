package queries

import (
	"context"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/client"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListCars(ctx context.Context, session shared.Session) ([]*car.Car, error)
	GetCar(ctx context.Context, session shared.Session, id uuid.UUID) (*car.Car, error)
	ListClients(ctx context.Context, session shared.Session) ([]*client.Client, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

func (q *catalogQueriesImpl) ListCars(ctx context.Context, _ shared.Session) ([]*car.Car, error) {
	var cars []*car.Car
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		var err error
		cars, err = r.Cars().FindAll(ctx)
		return err
	})
	return cars, err
}

func (q *catalogQueriesImpl) GetCar(ctx context.Context, _ shared.Session, id uuid.UUID) (*car.Car, error) {
	var c *car.Car
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		found, err := r.Cars().FindByID(ctx, id)
		if err != nil {
			return mapNotFound(err, ErrCarNotFound)
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (q *catalogQueriesImpl) ListClients(ctx context.Context, _ shared.Session) ([]*client.Client, error) {
	var clients []*client.Client
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		var err error
		clients, err = r.Clients().FindAll(ctx)
		return err
	})
	return clients, err
}
