// Package repository implements the write-side persistence ports on
// PostgreSQL. Every successful write fires pg_notify on the change channel
// so the availability watcher re-reads the full snapshot.
package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use. Satisfied by
// both the pool and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ChangeChannel is the LISTEN/NOTIFY channel carrying collection names.
const ChangeChannel = "innkeeper_changes"

const (
	TopicReservations = "reservations"
	TopicMaintenance  = "maintenance_windows"
	TopicRoomTypes    = "room_types"
)

// notifyChange is best effort: a missed notification is recovered by the
// watcher's periodic refresh tick.
func notifyChange(ctx context.Context, db DBTX, topic string) {
	if _, err := db.Exec(ctx, "SELECT pg_notify($1, $2)", ChangeChannel, topic); err != nil {
		slog.Warn("failed to notify change channel", "topic", topic, "error", err)
	}
}
