package readstore

import (
	"context"

	"fleetdesk/internal/domain/client"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/infra/converter"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientReadStore struct {
	db shared.DBTX
}

func NewClientReadStore(db shared.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

func (s *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row := s.db.QueryRow(ctx, `SELECT `+converter.ClientColumns+` FROM clients WHERE id = $1`, id)
	c, err := converter.ScanClient(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}
	return c, nil
}

func (s *ClientReadStore) FindAll(ctx context.Context) ([]*client.Client, error) {
	rows, err := s.db.Query(ctx, `SELECT `+converter.ClientColumns+` FROM clients ORDER BY full_name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	clients, err := converter.CollectClients(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan clients", err)
	}
	return clients, nil
}

func (s *ClientReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*client.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx, `SELECT `+converter.ClientColumns+` FROM clients WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find clients by IDs", err)
	}
	clients, err := converter.CollectClients(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan clients", err)
	}
	return clients, nil
}
