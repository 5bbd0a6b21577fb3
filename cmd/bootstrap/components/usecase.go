package components

import (
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/pkg/clock"
	"hotel-folio/internal/pkg/config"
	"hotel-folio/internal/usecase"
	"hotel-folio/internal/usecase/commands"
	"hotel-folio/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewFolioQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewFolioQueries(store queries.FolioReadStore, cat *catalog.Catalog, cfg config.Config) queries.FolioQueries {
	return queries.NewFolioQueries(store, cat, cfg.Folio.RoomSACCode)
}
