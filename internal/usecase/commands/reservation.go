package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomTypeNotFound        = errs.ErrRoomTypeNotFound
	ErrReservationNotFound     = errs.ErrReservationNotFound
	ErrInvalidStayRange        = errs.ErrInvalidStayRange
	ErrInvalidTransition       = errs.ErrInvalidTransition
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

// ConflictError reports why a submission was rejected. Reservation and
// maintenance conflicts are detected independently and both are carried, so
// the booking form can show both warnings at once instead of revealing them
// one at a time.
type ConflictError struct {
	Result availability.ConflictResult
}

func (e *ConflictError) Error() string {
	switch {
	case e.Result.Reservation && e.Result.Maintenance:
		return "stay overlaps an existing reservation and a maintenance period"
	case e.Result.Maintenance:
		return "stay overlaps a maintenance period"
	default:
		return "stay overlaps an existing reservation"
	}
}

func (e *ConflictError) Is(target error) bool {
	if target == errs.ErrReservationConflict {
		return e.Result.Reservation
	}
	if target == errs.ErrMaintenanceConflict {
		return e.Result.Maintenance
	}
	return false
}

type CreateReservationParams struct {
	RoomTypeName string
	GuestName    string
	GuestSurname string
	GuestEmail   string
	GuestPhone   string
	CheckIn      time.Time
	CheckOut     time.Time
	GuestCount   int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target reservation.Status) (*reservation.Reservation, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo  ReservationRepository
	roomRepo         RoomTypeRepository
	notificationRepo NotificationRepository
	factory          *reservation.Factory
	cache            *shared.IndexCache
	clock            clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomTypeRepository,
	notificationRepo NotificationRepository,
	factory *reservation.Factory,
	cache *shared.IndexCache,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:  reservationRepo,
		roomRepo:         roomRepo,
		notificationRepo: notificationRepo,
		factory:          factory,
		cache:            cache,
		clock:            clk,
	}
}

// CreateReservation handles a guest submission. The stay is checked against
// the latest snapshot indices immediately before the write because the form's
// reactive check may be stale by submission time. The check and the insert
// are still two separate steps: two concurrent submissions can both pass and
// double-book. That gap is accepted — staff confirmation is the real gate —
// rather than closed with a conditional insert.
func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
) (*reservation.Reservation, error) {
	rt, err := c.roomRepo.FindByName(ctx, params.RoomTypeName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	interval, err := stay.NewInterval(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	rIdx, mIdx := c.cache.Indices()
	result, err := availability.CheckConflict(rt.Name(), interval, rIdx, mIdx)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}
	if result.HasConflict() {
		return nil, &ConflictError{Result: result}
	}

	guest, err := reservation.NewGuest(params.GuestName, params.GuestSurname, params.GuestEmail, params.GuestPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	res, err := c.factory.CreateReservation(rt, guest, interval, params.GuestCount)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.reservationRepo.Create(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.enqueueConfirmationEmail(ctx, res); err != nil {
		// The booking is already persisted; a lost confirmation e-mail is
		// not worth failing the whole submission over.
		slog.Warn("failed to enqueue confirmation email", "reservation_id", res.ID(), "error", err)
	}

	return res, nil
}

func (c *reservationCommandsImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	target reservation.Status,
) (*reservation.Reservation, error) {
	res, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := res.TransitionTo(target, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.reservationRepo.UpdateStatus(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return res, nil
}

func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	if err := c.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) enqueueConfirmationEmail(ctx context.Context, res *reservation.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"to":             res.Guest().Email(),
		"guest_name":     res.Guest().FullName(),
		"room_type":      res.RoomTypeName(),
		"check_in":       res.CheckIn(),
		"check_out":      res.CheckOut(),
		"guests":         res.GuestCount(),
	})
	if err != nil {
		return err
	}
	return c.notificationRepo.CreateJob(ctx, "email", "booking_received", payload, c.clock.Now())
}
