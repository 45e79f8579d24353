package components

import (
	"travel-cost-service/internal/infra/maps"
	"travel-cost-service/internal/infra/readstore"
	"travel-cost-service/internal/infra/repository"
	"travel-cost-service/internal/pkg/config"
	"travel-cost-service/internal/usecase/commands"
	"travel-cost-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewTravelRecordRepository,
			fx.As(new(commands.TravelRecordRepository)),
		),
		fx.Annotate(
			readstore.NewTravelRecordReadStore,
			fx.As(new(queries.TravelRecordReadStore)),
		),
		fx.Annotate(
			NewMapsClient,
			fx.As(new(commands.TravelTimeProvider)),
		),
	),
)

func NewMapsClient(cfg config.Config) *maps.Client {
	return maps.NewClient(cfg.Maps)
}
