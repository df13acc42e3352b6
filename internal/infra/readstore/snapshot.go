package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/repository"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/shared"
)

// SnapshotReadStore reads the complete reservation and maintenance sets in
// one pass. The watcher calls it on every change notification, so the two
// queries stay deliberately narrow: only the columns index building needs.
type SnapshotReadStore struct {
	db DBTX
}

func NewSnapshotReadStore(db DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: db}
}

func (s *SnapshotReadStore) ReadAll(ctx context.Context) (shared.CollectionSnapshot, error) {
	stays, err := s.readStays(ctx)
	if err != nil {
		return shared.CollectionSnapshot{}, err
	}
	blocks, err := s.readBlocks(ctx)
	if err != nil {
		return shared.CollectionSnapshot{}, err
	}
	return shared.CollectionSnapshot{Stays: stays, Blocks: blocks}, nil
}

func (s *SnapshotReadStore) readStays(ctx context.Context) ([]availability.BookedStay, error) {
	rows, err := s.db.Query(ctx,
		"SELECT room_type_name, check_in, check_out, status FROM reservations")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation snapshot", err)
	}
	defer rows.Close()

	var stays []availability.BookedStay
	for rows.Next() {
		var (
			name              string
			checkIn, checkOut pgtype.Timestamptz
			status            string
		)
		if err := rows.Scan(&name, &checkIn, &checkOut, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation snapshot row", err)
		}
		stays = append(stays, availability.BookedStay{
			RoomTypeName: name,
			CheckIn:      checkIn.Time,
			CheckOut:     checkOut.Time,
			Status:       reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation snapshot", err)
	}
	return stays, nil
}

func (s *SnapshotReadStore) readBlocks(ctx context.Context) ([]availability.MaintenanceBlock, error) {
	rows, err := s.db.Query(ctx,
		"SELECT room_type_name, status, schedule_kind, start_at, end_at, due_date FROM maintenance_windows")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read maintenance snapshot", err)
	}
	defer rows.Close()

	var blocks []availability.MaintenanceBlock
	for rows.Next() {
		var (
			name, status, kind   string
			startAt, endAt, due  pgtype.Timestamptz
		)
		if err := rows.Scan(&name, &status, &kind, &startAt, &endAt, &due); err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance snapshot row", err)
		}

		schedule, err := repository.ScheduleFromColumns(
			maintenance.ScheduleKind(kind),
			pgconv.TimePtrFromPgtype(startAt),
			pgconv.TimePtrFromPgtype(endAt),
			pgconv.TimePtrFromPgtype(due),
		)
		if err != nil {
			// A malformed row must not take the whole snapshot down.
			continue
		}
		blocks = append(blocks, availability.MaintenanceBlock{
			RoomTypeName: name,
			Status:       maintenance.Status(status),
			Schedule:     schedule,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate maintenance snapshot", err)
	}
	return blocks, nil
}
