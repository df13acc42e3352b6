package commands

import (
	"context"
	"time"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/room"

	"github.com/google/uuid"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *room.RoomType) error
	Update(ctx context.Context, rt *room.RoomType) error
	Delete(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) (*room.RoomType, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, w *maintenance.Window) error
	FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Window, error)
	UpdateStatus(ctx context.Context, w *maintenance.Window) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository records outgoing notification jobs (booking
// confirmation e-mails). Delivery is an external collaborator; the command
// layer only enqueues.
type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
