//go:build unit

package availability_test

import (
	"sort"
	"testing"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/stay"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func booked(room string, in, out int, status reservation.Status) availability.BookedStay {
	return availability.BookedStay{
		RoomTypeName: room,
		CheckIn:      day(in),
		CheckOut:     day(out),
		Status:       status,
	}
}

func TestBuildReservationIndex(t *testing.T) {
	t.Run("only confirmed reservations occupy", func(t *testing.T) {
		ix := availability.BuildReservationIndex([]availability.BookedStay{
			booked("Suite", 1, 3, reservation.StatusConfirmed),
			booked("Suite", 5, 7, reservation.StatusPending),
			booked("Suite", 8, 9, reservation.StatusCancelled),
			booked("Suite", 10, 11, reservation.StatusCompleted),
			booked("Twin", 1, 2, reservation.StatusConfirmed),
		})

		require.Len(t, ix.For("Suite"), 1)
		assert.Equal(t, day(1), ix.For("Suite")[0].Start())
		require.Len(t, ix.For("Twin"), 1)
	})

	t.Run("malformed records are skipped, valid ones survive", func(t *testing.T) {
		ix := availability.BuildReservationIndex([]availability.BookedStay{
			{RoomTypeName: "Suite", CheckOut: day(3), Status: reservation.StatusConfirmed},      // missing check-in
			{RoomTypeName: "Suite", CheckIn: day(1), Status: reservation.StatusConfirmed},      // missing check-out
			booked("Suite", 9, 5, reservation.StatusConfirmed),                                 // inverted
			{RoomTypeName: "", CheckIn: day(1), CheckOut: day(2), Status: reservation.StatusConfirmed}, // missing room
			booked("Suite", 1, 3, reservation.StatusConfirmed),
			booked("Twin", 4, 6, reservation.StatusConfirmed),
		})

		require.Len(t, ix.For("Suite"), 1)
		require.Len(t, ix.For("Twin"), 1)
	})

	t.Run("rebuild yields identical membership", func(t *testing.T) {
		stays := []availability.BookedStay{
			booked("Suite", 1, 3, reservation.StatusConfirmed),
			booked("Suite", 5, 9, reservation.StatusConfirmed),
			booked("Twin", 2, 4, reservation.StatusConfirmed),
		}

		first := availability.BuildReservationIndex(stays)
		second := availability.BuildReservationIndex(stays)

		normalize := func(ix availability.Index) map[string][]string {
			out := make(map[string][]string)
			for room, ivs := range ix {
				for _, iv := range ivs {
					out[room] = append(out[room], iv.String())
				}
				sort.Strings(out[room])
			}
			return out
		}

		if diff := cmp.Diff(normalize(first), normalize(second)); diff != "" {
			t.Errorf("index rebuild mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("empty input yields empty index", func(t *testing.T) {
		ix := availability.BuildReservationIndex(nil)
		assert.Empty(t, ix.For("Suite"))
	})
}

func TestBuildMaintenanceIndex(t *testing.T) {
	today := day(15)

	rangeSched := func(start, end int) maintenance.Schedule {
		s, err := maintenance.NewRangeSchedule(day(start), day(end))
		require.NoError(t, err)
		return s
	}

	t.Run("only pending and in-progress block", func(t *testing.T) {
		ix := availability.BuildMaintenanceIndex([]availability.MaintenanceBlock{
			{RoomTypeName: "Suite", Status: maintenance.StatusPending, Schedule: rangeSched(1, 3)},
			{RoomTypeName: "Suite", Status: maintenance.StatusInProgress, Schedule: rangeSched(5, 7)},
			{RoomTypeName: "Suite", Status: maintenance.StatusCompleted, Schedule: rangeSched(8, 9)},
		}, today)

		assert.Len(t, ix.For("Suite"), 2)
	})

	t.Run("due date blocks its calendar day", func(t *testing.T) {
		ix := availability.BuildMaintenanceIndex([]availability.MaintenanceBlock{
			{RoomTypeName: "Twin", Status: maintenance.StatusPending, Schedule: maintenance.NewDueDateSchedule(day(20))},
		}, today)

		ivs := ix.For("Twin")
		require.Len(t, ivs, 1)
		assert.Equal(t, day(20), ivs[0].Start())
		assert.Equal(t, day(21), ivs[0].End())
	})

	t.Run("undated blocks today only", func(t *testing.T) {
		ix := availability.BuildMaintenanceIndex([]availability.MaintenanceBlock{
			{RoomTypeName: "Twin", Status: maintenance.StatusInProgress, Schedule: maintenance.NewUndatedSchedule()},
		}, today)

		ivs := ix.For("Twin")
		require.Len(t, ivs, 1)
		assert.True(t, ivs[0].Contains(today))
		assert.Equal(t, stay.DayOf(today), ivs[0])
	})

	t.Run("missing room type is skipped", func(t *testing.T) {
		ix := availability.BuildMaintenanceIndex([]availability.MaintenanceBlock{
			{RoomTypeName: "", Status: maintenance.StatusPending, Schedule: maintenance.NewUndatedSchedule()},
		}, today)

		assert.Empty(t, ix)
	})
}
