package components

import (
	"context"

	"innkeeper/internal/infra/watch"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WatchModule = fx.Module("watch",
	fx.Provide(
		NewWatcher,
	),
	fx.Invoke(RunWatcher),
)

func NewWatcher(pool *pgxpool.Pool, reader shared.SnapshotReader, cache *shared.IndexCache, cfg config.Config) *watch.Watcher {
	return watch.New(pool, reader, cache, cfg.Watch)
}

func RunWatcher(lc fx.Lifecycle, w *watch.Watcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
