//go:build unit

package shared_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIndexCache_ApplyRebuildsBothIndices(t *testing.T) {
	clk := clock.NewMockClock(day(2026, 3, 10))
	cache := shared.NewIndexCache(clk)

	cache.Apply(shared.CollectionSnapshot{
		Stays: []availability.BookedStay{
			{RoomTypeName: "Suite", CheckIn: day(2026, 3, 12), CheckOut: day(2026, 3, 15), Status: reservation.StatusConfirmed},
			{RoomTypeName: "Suite", CheckIn: day(2026, 3, 20), CheckOut: day(2026, 3, 22), Status: reservation.StatusPending},
		},
		Blocks: []availability.MaintenanceBlock{
			{RoomTypeName: "Loft", Status: maintenance.StatusPending, Schedule: maintenance.NewUndatedSchedule()},
		},
	})

	rIdx, mIdx := cache.Indices()
	assert.Len(t, rIdx.For("Suite"), 1, "only confirmed stays should be indexed")
	require.Len(t, mIdx.For("Loft"), 1)
	assert.True(t, mIdx.For("Loft")[0].Contains(day(2026, 3, 10)))
}

func TestIndexCache_LastSnapshotWins(t *testing.T) {
	clk := clock.NewMockClock(day(2026, 3, 10))
	cache := shared.NewIndexCache(clk)

	first := shared.CollectionSnapshot{
		Stays: []availability.BookedStay{
			{RoomTypeName: "Suite", CheckIn: day(2026, 3, 12), CheckOut: day(2026, 3, 15), Status: reservation.StatusConfirmed},
		},
	}
	second := shared.CollectionSnapshot{}

	cache.Apply(first)
	cache.Apply(second)

	rIdx, _ := cache.Indices()
	assert.Empty(t, rIdx.For("Suite"), "the last full snapshot should fully replace earlier state")

	// Re-applying an identical snapshot is a no-op on the derived state.
	cache.Apply(second)
	rIdx, _ = cache.Indices()
	assert.Empty(t, rIdx.For("Suite"))
}

func TestIndexCache_ReapplyMovesUndatedFallbackAcrossMidnight(t *testing.T) {
	clk := clock.NewMockClock(day(2026, 3, 10).Add(23 * time.Hour))
	cache := shared.NewIndexCache(clk)

	cache.Apply(shared.CollectionSnapshot{
		Blocks: []availability.MaintenanceBlock{
			{RoomTypeName: "Loft", Status: maintenance.StatusInProgress, Schedule: maintenance.NewUndatedSchedule()},
		},
	})

	_, mIdx := cache.Indices()
	require.Len(t, mIdx.For("Loft"), 1)
	assert.True(t, mIdx.For("Loft")[0].Contains(day(2026, 3, 10)))
	assert.False(t, mIdx.For("Loft")[0].Contains(day(2026, 3, 11)))

	// Midnight passes with no store change; the block must follow "today".
	clk.Add(2 * time.Hour)
	cache.Reapply()

	_, mIdx = cache.Indices()
	require.Len(t, mIdx.For("Loft"), 1)
	assert.False(t, mIdx.For("Loft")[0].Contains(day(2026, 3, 10)))
	assert.True(t, mIdx.For("Loft")[0].Contains(day(2026, 3, 11)))
}
