package components

import (
	"innkeeper/internal/handler"
	"innkeeper/internal/handler/api"
	"innkeeper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewMaintenanceHandler,
		api.NewAvailabilityHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
