// Package watch keeps the in-memory availability indices in sync with the
// database. Three triggers feed the same full-snapshot rebuild: LISTEN/NOTIFY
// events from the write side, a periodic refresh tick covering missed
// notifications, and a midnight job that re-anchors "today" for undated
// maintenance fallbacks.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"innkeeper/internal/infra/repository"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/usecase/shared"
)

const listenRetryDelay = 5 * time.Second

type Watcher struct {
	pool   *pgxpool.Pool
	reader shared.SnapshotReader
	cache  *shared.IndexCache
	cfg    config.WatchConfig

	cron   *cron.Cron
	cancel context.CancelFunc
	done   chan struct{}
}

func New(pool *pgxpool.Pool, reader shared.SnapshotReader, cache *shared.IndexCache, cfg config.WatchConfig) *Watcher {
	return &Watcher{
		pool:   pool,
		reader: reader,
		cache:  cache,
		cfg:    cfg,
		cron:   cron.New(),
		done:   make(chan struct{}),
	}
}

// Start loads the initial snapshot synchronously, then runs the listener
// and the cron jobs until Stop. The initial load is fatal: serving
// availability answers from an empty index would report every room free.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.refresh(ctx); err != nil {
		return fmt.Errorf("initial snapshot load: %w", err)
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	if _, err := w.cron.AddFunc(fmt.Sprintf("@every %s", w.cfg.RefreshInterval), func() {
		if err := w.refresh(listenCtx); err != nil {
			slog.Warn("periodic snapshot refresh failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	if _, err := w.cron.AddFunc(w.cfg.MidnightSpec, func() {
		slog.Info("re-anchoring availability indices at day boundary")
		w.cache.Reapply()
	}); err != nil {
		return fmt.Errorf("register midnight job: %w", err)
	}
	w.cron.Start()

	go w.listen(listenCtx)
	return nil
}

func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}
	cronCtx := w.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (w *Watcher) refresh(ctx context.Context) error {
	snap, err := w.reader.ReadAll(ctx)
	if err != nil {
		return err
	}
	w.cache.Apply(snap)
	slog.Debug("availability indices rebuilt",
		"stays", len(snap.Stays), "blocks", len(snap.Blocks))
	return nil
}

// listen holds a dedicated connection on the change channel. Any failure
// drops the connection and retries; the periodic refresh covers the gap.
func (w *Watcher) listen(ctx context.Context) {
	defer close(w.done)
	for {
		if err := w.listenOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("change listener disconnected", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(listenRetryDelay):
		}
	}
}

func (w *Watcher) listenOnce(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+repository.ChangeChannel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		slog.Debug("change notification received", "topic", notification.Payload)
		if err := w.refresh(ctx); err != nil {
			slog.Warn("snapshot refresh after notification failed", "error", err)
		}
	}
}
