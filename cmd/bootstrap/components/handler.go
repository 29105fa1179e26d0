package components

import (
	"shuttlebook/internal/handler"
	"shuttlebook/internal/handler/api"
	"shuttlebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
