package components

import (
	"parkpass/internal/handler"
	"parkpass/internal/handler/api"
	"parkpass/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTokenHandler,
		api.NewScanHandler,
		api.NewSessionHandler,
		api.NewLotHandler,
		api.NewInvoiceHandler,
		api.NewBillingHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
