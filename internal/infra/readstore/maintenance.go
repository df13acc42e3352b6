package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"
)

type MaintenanceReadStore struct {
	db DBTX
}

func NewMaintenanceReadStore(db DBTX) *MaintenanceReadStore {
	return &MaintenanceReadStore{db: db}
}

const selectMaintenanceSQL = `
SELECT id, room_type_name, issue, priority, status,
	schedule_kind, start_at, end_at, due_date,
	created_at, updated_at
FROM maintenance_windows
ORDER BY created_at DESC`

func (s *MaintenanceReadStore) FindAll(ctx context.Context) ([]*queries.MaintenanceView, error) {
	rows, err := s.db.Query(ctx, selectMaintenanceSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance windows", err)
	}
	defer rows.Close()

	var views []*queries.MaintenanceView
	for rows.Next() {
		var (
			id                   pgtype.UUID
			view                 queries.MaintenanceView
			startAt, endAt       pgtype.Timestamptz
			dueDate              pgtype.Timestamptz
			createdAt, updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&id, &view.RoomTypeName, &view.Issue, &view.Priority, &view.Status,
			&view.ScheduleKind, &startAt, &endAt, &dueDate,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance window", err)
		}

		view.ID = uuid.UUID(id.Bytes)
		view.Start = pgconv.TimePtrFromPgtype(startAt)
		view.End = pgconv.TimePtrFromPgtype(endAt)
		view.DueDate = pgconv.TimePtrFromPgtype(dueDate)
		view.CreatedAt = createdAt.Time
		view.UpdatedAt = updatedAt.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate maintenance windows", err)
	}
	return views, nil
}
