package components

import (
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/config"
	"fleetdesk/internal/usecase"
	"fleetdesk/internal/usecase/commands"
	"fleetdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	NewQuerySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewCalendarQueries,
		queries.NewAnalyticsQueries,
		queries.NewOverviewLoader,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewQuerySettings(cfg config.Config) (queries.Settings, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return queries.Settings{}, err
	}
	settings := queries.DefaultSettings()
	settings.Location = loc
	if cfg.Analytics.UpcomingHorizon > 0 {
		settings.UpcomingHorizon = cfg.Analytics.UpcomingHorizon
	}
	if cfg.Analytics.TopN > 0 {
		settings.TopN = cfg.Analytics.TopN
	}
	if cfg.Analytics.OverviewConcurrency > 0 {
		settings.OverviewConcurrency = cfg.Analytics.OverviewConcurrency
	}
	return settings, nil
}
