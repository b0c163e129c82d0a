package components

import (
	"fleetdesk/internal/infra/uow"

	"go.uber.org/fx"
)

// Repositories and read stores are built per transaction inside the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
