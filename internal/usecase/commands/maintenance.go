package commands

import (
	"context"
	"time"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMaintenanceNotFound = errs.ErrMaintenanceNotFound

// ScheduleMaintenanceParams mirrors the three record shapes: an explicit
// range, a single due date, or no date at all (blocks today only).
type ScheduleMaintenanceParams struct {
	RoomTypeName string
	Issue        string
	Priority     maintenance.Priority
	Start        *time.Time
	End          *time.Time
	DueDate      *time.Time
}

type MaintenanceCommands interface {
	ScheduleMaintenance(ctx context.Context, params ScheduleMaintenanceParams) (*maintenance.Window, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target maintenance.Status) (*maintenance.Window, error)
	DeleteMaintenance(ctx context.Context, id uuid.UUID) error
}

type maintenanceCommandsImpl struct {
	maintenanceRepo MaintenanceRepository
	roomRepo        RoomTypeRepository
}

func NewMaintenanceCommands(maintenanceRepo MaintenanceRepository, roomRepo RoomTypeRepository) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
	}
}

func (c *maintenanceCommandsImpl) ScheduleMaintenance(
	ctx context.Context,
	params ScheduleMaintenanceParams,
) (*maintenance.Window, error) {
	if _, err := c.roomRepo.FindByName(ctx, params.RoomTypeName); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	schedule, err := resolveSchedule(params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	w, err := maintenance.NewWindow(params.RoomTypeName, params.Issue, params.Priority, schedule)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.maintenanceRepo.Create(ctx, w); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return w, nil
}

func (c *maintenanceCommandsImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	target maintenance.Status,
) (*maintenance.Window, error) {
	w, err := c.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := w.AdvanceTo(target); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.maintenanceRepo.UpdateStatus(ctx, w); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return w, nil
}

func (c *maintenanceCommandsImpl) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	if err := c.maintenanceRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMaintenanceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// resolveSchedule folds the request fields into the schedule union in the
// legacy priority order: explicit range first, then due date, then undated.
func resolveSchedule(params ScheduleMaintenanceParams) (maintenance.Schedule, error) {
	if params.Start != nil && params.End != nil {
		return maintenance.NewRangeSchedule(*params.Start, *params.End)
	}
	if params.DueDate != nil {
		return maintenance.NewDueDateSchedule(*params.DueDate), nil
	}
	return maintenance.NewUndatedSchedule(), nil
}
