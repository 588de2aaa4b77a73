package components

import (
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewAvailabilityEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewGuestCommands,
		commands.NewReservationCommands,
		commands.NewStayCommands,
		commands.NewBillingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
		queries.NewStayQueries,
		queries.NewBillingQueries,
	),
)
