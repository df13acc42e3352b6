package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/pgconv"
)

type MaintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const insertMaintenanceSQL = `
INSERT INTO maintenance_windows (
	id, room_type_name, issue, priority, status,
	schedule_kind, start_at, end_at, due_date,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`

func (r *MaintenanceRepository) Create(ctx context.Context, w *maintenance.Window) error {
	s := w.Schedule()
	_, err := r.db.Exec(ctx, insertMaintenanceSQL,
		pgconv.UUIDToPgtype(w.ID()),
		w.RoomTypeName(),
		w.Issue(),
		w.Priority().String(),
		w.Status().String(),
		string(s.Kind()),
		pgconv.TimePtrToPgtype(s.Start()),
		pgconv.TimePtrToPgtype(s.End()),
		pgconv.TimePtrToPgtype(s.DueDate()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create maintenance window", err)
	}

	notifyChange(ctx, r.db, TopicMaintenance)
	return nil
}

const selectMaintenanceSQL = `
SELECT id, room_type_name, issue, priority, status,
	schedule_kind, start_at, end_at, due_date,
	created_at, updated_at
FROM maintenance_windows
WHERE id = $1`

func (r *MaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Window, error) {
	var (
		rowID                pgtype.UUID
		roomTypeName, issue  string
		priority, status     string
		scheduleKind         string
		startAt, endAt       pgtype.Timestamptz
		dueDate              pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectMaintenanceSQL, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &roomTypeName, &issue, &priority, &status,
		&scheduleKind, &startAt, &endAt, &dueDate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance window", err)
	}

	schedule, err := ScheduleFromColumns(
		maintenance.ScheduleKind(scheduleKind),
		pgconv.TimePtrFromPgtype(startAt),
		pgconv.TimePtrFromPgtype(endAt),
		pgconv.TimePtrFromPgtype(dueDate),
	)
	if err != nil {
		return nil, errs.Wrap(err, "stored maintenance schedule is invalid")
	}

	return maintenance.ReconstructWindow(
		uuid.UUID(rowID.Bytes),
		roomTypeName,
		issue,
		maintenance.Priority(priority),
		maintenance.Status(status),
		schedule,
		createdAt.Time,
		updatedAt.Time,
	), nil
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, w *maintenance.Window) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE maintenance_windows SET status = $1, updated_at = now() WHERE id = $2",
		w.Status().String(),
		pgconv.UUIDToPgtype(w.ID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update maintenance status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("maintenance window not found")
	}

	notifyChange(ctx, r.db, TopicMaintenance)
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM maintenance_windows WHERE id = $1", pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete maintenance window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("maintenance window not found")
	}

	notifyChange(ctx, r.db, TopicMaintenance)
	return nil
}

// ScheduleFromColumns rebuilds the schedule union from the nullable date
// columns, applying the same fallback order legacy records rely on: an
// explicit range wins, then a due date, then undated.
func ScheduleFromColumns(kind maintenance.ScheduleKind, start, end, due *time.Time) (maintenance.Schedule, error) {
	switch {
	case kind == maintenance.KindRange && start != nil && end != nil:
		return maintenance.NewRangeSchedule(*start, *end)
	case kind == maintenance.KindDueDate && due != nil:
		return maintenance.NewDueDateSchedule(*due), nil
	case kind == maintenance.KindUndated:
		return maintenance.NewUndatedSchedule(), nil
	}

	// Legacy rows carry no kind tag; infer from whichever dates survive.
	switch {
	case start != nil && end != nil:
		return maintenance.NewRangeSchedule(*start, *end)
	case due != nil:
		return maintenance.NewDueDateSchedule(*due), nil
	default:
		return maintenance.NewUndatedSchedule(), nil
	}
}
