package components

import (
	"car-rental-pricing/internal/handler"
	"car-rental-pricing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRateHandler,
		api.NewQuoteHandler,
	),
	fx.Invoke(handler.NewRouter),
)
