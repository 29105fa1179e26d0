package components

import (
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/internal/usecase/shared"

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
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewWaitlistCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewQuoteQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		shared.NewJWTTokenValidator,
	),
)
