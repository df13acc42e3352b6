// Package availability derives occupied and blocked intervals from the raw
// reservation and maintenance collections, and answers the two questions the
// booking flow asks: does a candidate stay conflict, and what does each room
// look like today.
//
// Both indices are rebuilt from a full snapshot on every change-feed event.
// Rebuilds are idempotent and order-independent: the last snapshot wins, so
// interleaved intermediate snapshots cannot corrupt the derived state.
package availability

import (
	"time"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/stay"
)

// Index maps a room-type name to the intervals that occupy or block it.
// Per-room interval order carries no meaning.
type Index map[string][]stay.Interval

// For returns the intervals recorded for the room type, nil if none.
func (ix Index) For(roomTypeName string) []stay.Interval {
	return ix[roomTypeName]
}

// BookedStay is the raw reservation shape delivered by the change feed.
// Records can be malformed (legacy writes with missing dates); the index
// builder skips anything it cannot reason about safely.
type BookedStay struct {
	RoomTypeName string
	CheckIn      time.Time
	CheckOut     time.Time
	Status       reservation.Status
}

// MaintenanceBlock is the raw maintenance shape delivered by the change feed,
// already folded into the schedule union.
type MaintenanceBlock struct {
	RoomTypeName string
	Status       maintenance.Status
	Schedule     maintenance.Schedule
}

// BuildReservationIndex derives per-room occupied intervals from the full
// reservation set. Only confirmed reservations occupy a room. Records with
// missing or inverted dates are dropped; one malformed record must never
// block availability computation for the rest.
func BuildReservationIndex(stays []BookedStay) Index {
	ix := make(Index)
	for _, s := range stays {
		if !s.Status.Occupies() {
			continue
		}
		if s.RoomTypeName == "" || s.CheckIn.IsZero() || s.CheckOut.IsZero() {
			continue
		}
		iv, err := stay.NewInterval(s.CheckIn, s.CheckOut)
		if err != nil {
			continue
		}
		ix[s.RoomTypeName] = append(ix[s.RoomTypeName], iv)
	}
	return ix
}

// BuildMaintenanceIndex derives per-room blocked intervals from the full
// maintenance set. Only pending and in-progress windows block. today anchors
// the undated legacy fallback.
func BuildMaintenanceIndex(blocks []MaintenanceBlock, today time.Time) Index {
	ix := make(Index)
	for _, b := range blocks {
		if !b.Status.Blocks() {
			continue
		}
		if b.RoomTypeName == "" {
			continue
		}
		ix[b.RoomTypeName] = append(ix[b.RoomTypeName], b.Schedule.Resolve(today))
	}
	return ix
}
