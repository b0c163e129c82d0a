package components

import (
	"fleetdesk/internal/handler"
	"fleetdesk/internal/handler/api"
	"fleetdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
