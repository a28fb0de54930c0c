package components

import (
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/infra/readstore"
	"venue-scheduler/internal/infra/uow"
	"venue-scheduler/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(usecase.VenueReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(usecase.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
			fx.As(new(usecase.WorkerReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
