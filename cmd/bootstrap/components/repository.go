package components

import (
	"innkeeper/internal/infra/readstore"
	"innkeeper/internal/infra/repository"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"
	"innkeeper/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewWriteDBTX,
		NewReadDBTX,
		fx.Annotate(
			repository.NewRoomTypeRepository,
			fx.As(new(commands.RoomTypeRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewMaintenanceRepository,
			fx.As(new(commands.MaintenanceRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(queries.RoomTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewMaintenanceReadStore,
			fx.As(new(queries.MaintenanceReadStore)),
		),
		fx.Annotate(
			readstore.NewSnapshotReadStore,
			fx.As(new(shared.SnapshotReader)),
		),
	),
)

func NewWriteDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

func NewReadDBTX(pool *pgxpool.Pool) readstore.DBTX {
	return pool
}
