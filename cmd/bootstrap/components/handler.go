package components

import (
	"travel-cost-service/internal/handler"
	"travel-cost-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTravelHandler,
	),
	fx.Invoke(handler.NewRouter),
)
