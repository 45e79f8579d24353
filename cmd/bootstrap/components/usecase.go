package components

import (
	"travel-cost-service/internal/pkg/clock"
	"travel-cost-service/internal/usecase/commands"
	"travel-cost-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewTravelCommands,
		queries.NewTravelQueries,
	),
)
