package availability

import (
	"math"
	"time"
)

// RoomStatus classifies one room type against "today".
type RoomStatus struct {
	UnderMaintenance bool
	ActiveBookings   int
}

// Available means no active booking and no maintenance. The checkout day is
// free: a stay ending today does not count as active.
func (s RoomStatus) Available() bool {
	return !s.UnderMaintenance && s.ActiveBookings == 0
}

func (s RoomStatus) Occupied() bool {
	return s.ActiveBookings > 0
}

// StatusFor derives the status of one room type at the given instant using
// the same half-open rule as conflict detection: an interval holds today iff
// start <= today < end.
func StatusFor(roomTypeName string, today time.Time, reservations, maintenance Index) RoomStatus {
	var status RoomStatus
	for _, iv := range maintenance.For(roomTypeName) {
		if iv.Contains(today) {
			status.UnderMaintenance = true
			break
		}
	}
	for _, iv := range reservations.For(roomTypeName) {
		if iv.Contains(today) {
			status.ActiveBookings++
		}
	}
	return status
}

// Summary aggregates per-room statuses for the dashboard.
type Summary struct {
	TotalRooms       int
	Available        int
	Occupied         int
	UnderMaintenance int
	// OccupancyRate is occupied room types over total, as a rounded
	// percentage.
	OccupancyRate int
}

// Summarize reduces the per-room statuses over all room types. No invariant
// beyond summing booleans and counts.
func Summarize(roomTypeNames []string, today time.Time, reservations, maintenance Index) Summary {
	summary := Summary{TotalRooms: len(roomTypeNames)}
	for _, name := range roomTypeNames {
		status := StatusFor(name, today, reservations, maintenance)
		if status.Available() {
			summary.Available++
		}
		if status.Occupied() {
			summary.Occupied++
		}
		if status.UnderMaintenance {
			summary.UnderMaintenance++
		}
	}
	if summary.TotalRooms > 0 {
		summary.OccupancyRate = int(math.Round(float64(summary.Occupied) / float64(summary.TotalRooms) * 100))
	}
	return summary
}
