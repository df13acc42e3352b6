package components

import (
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewRoomTypeCommands,
		commands.NewMaintenanceCommands,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewRoomTypeQueries,
		queries.NewMaintenanceQueries,
		queries.NewDashboardQueries,
	),
)
