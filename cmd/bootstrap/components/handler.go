package components

import (
	"hotel-folio/internal/handler"
	"hotel-folio/internal/handler/api"
	"hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewFolioHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		request.RegisterValidators,
		handler.NewRouter,
	),
)
