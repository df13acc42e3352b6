package reservation

import (
	"errors"
	"time"

	"innkeeper/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// Reservation is a guest's stay request for one room type. The room type is
// referenced by display name, matching the records the change feed delivers.
type Reservation struct {
	id           uuid.UUID
	roomTypeName string
	guest        Guest
	interval     stay.Interval
	guestCount   int
	status       Status
	payment      Payment
	createdAt    time.Time
	updatedAt    time.Time
}

func newReservation(
	roomTypeName string,
	guest Guest,
	interval stay.Interval,
	guestCount int,
	payment Payment,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:           uuid.New(),
		roomTypeName: roomTypeName,
		guest:        guest,
		interval:     interval,
		guestCount:   guestCount,
		status:       StatusPending,
		payment:      payment,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	roomTypeName string,
	guest Guest,
	interval stay.Interval,
	guestCount int,
	status Status,
	payment Payment,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		roomTypeName: roomTypeName,
		guest:        guest,
		interval:     interval,
		guestCount:   guestCount,
		status:       status,
		payment:      payment,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomTypeName() string   { return r.roomTypeName }
func (r *Reservation) Guest() Guest           { return r.guest }
func (r *Reservation) Interval() stay.Interval { return r.interval }
func (r *Reservation) CheckIn() time.Time     { return r.interval.Start() }
func (r *Reservation) CheckOut() time.Time    { return r.interval.End() }
func (r *Reservation) GuestCount() int        { return r.guestCount }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Payment() Payment       { return r.payment }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

// Occupies reports whether this reservation blocks its room type.
func (r *Reservation) Occupies() bool {
	return r.status.Occupies()
}

// TransitionTo applies a staff status change, enforcing the workflow rules.
func (r *Reservation) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	r.status = target
	r.updatedAt = now
	return nil
}
