package components

import (
	"hoteltrack/internal/handler"
	"hoteltrack/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewReservationHandler,
		api.NewStayHandler,
		api.NewBillingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
