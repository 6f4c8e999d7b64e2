package components

import (
	"request-market/internal/handler"
	"request-market/internal/handler/api"
	"request-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewResponseHandler,
		api.NewUrgentBoostHandler,
		api.NewEntitlementHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
