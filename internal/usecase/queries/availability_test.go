//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/usecase/queries"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func suiteView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:          uuid.New(),
		Name:        "Suite",
		Slug:        "suite",
		NightlyRate: decimal.NewFromInt(1000),
		Capacity:    2,
		PricingMode: "per_room",
	}
}

func newAvailabilityQueries(rooms *fakeRoomStore, cache *shared.IndexCache) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(rooms, cache, pricing.NewDefaultCalculator())
}

func TestAvailabilityCheck(t *testing.T) {
	clk := clock.NewMockClock(day(2026, 6, 1))
	cache := shared.NewIndexCache(clk)
	cache.Apply(shared.CollectionSnapshot{
		Stays: []availability.BookedStay{
			{RoomTypeName: "Suite", CheckIn: day(2026, 6, 10), CheckOut: day(2026, 6, 13), Status: reservation.StatusConfirmed},
		},
		Blocks: []availability.MaintenanceBlock{
			{RoomTypeName: "Suite", Status: maintenance.StatusPending, Schedule: maintenance.NewDueDateSchedule(day(2026, 6, 20))},
		},
	})

	q := newAvailabilityQueries(&fakeRoomStore{views: []*queries.RoomTypeView{suiteView()}}, cache)

	t.Run("overlapping stay reports reservation conflict", func(t *testing.T) {
		view, err := q.Check(context.Background(), "Suite", day(2026, 6, 12), day(2026, 6, 14))
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.True(t, view.ReservationConflict)
		assert.False(t, view.MaintenanceConflict)
	})

	t.Run("stay over the due date reports maintenance conflict", func(t *testing.T) {
		view, err := q.Check(context.Background(), "Suite", day(2026, 6, 19), day(2026, 6, 21))
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.False(t, view.ReservationConflict)
		assert.True(t, view.MaintenanceConflict)
	})

	t.Run("stay starting on checkout day is free", func(t *testing.T) {
		view, err := q.Check(context.Background(), "Suite", day(2026, 6, 13), day(2026, 6, 15))
		require.NoError(t, err)
		assert.True(t, view.Available)
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, err := q.Check(context.Background(), "Penthouse", day(2026, 6, 13), day(2026, 6, 15))
		assert.ErrorIs(t, err, queries.ErrRoomTypeNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := q.Check(context.Background(), "Suite", day(2026, 6, 15), day(2026, 6, 13))
		assert.ErrorIs(t, err, queries.ErrInvalidStayRange)
	})
}

func TestAvailabilityQuote(t *testing.T) {
	clk := clock.NewMockClock(day(2026, 6, 1))
	cache := shared.NewIndexCache(clk)
	q := newAvailabilityQueries(&fakeRoomStore{views: []*queries.RoomTypeView{suiteView()}}, cache)

	t.Run("per-room with overflow guests", func(t *testing.T) {
		view, err := q.Quote(context.Background(), "Suite", day(2026, 6, 10), day(2026, 6, 13), 4)
		require.NoError(t, err)
		assert.Equal(t, 3, view.Payment.Nights)
		assert.True(t, view.Payment.BasePrice.Equal(decimal.NewFromInt(3000)))
		assert.True(t, view.Payment.ExtraFee.Equal(decimal.NewFromInt(1200)))
		assert.True(t, view.Payment.Total.Equal(decimal.NewFromInt(4200)))
	})

	t.Run("partial nights round up", func(t *testing.T) {
		checkIn := day(2026, 6, 10).Add(15 * time.Hour)
		checkOut := day(2026, 6, 13).Add(11 * time.Hour)
		view, err := q.Quote(context.Background(), "Suite", checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, view.Payment.Nights)
	})

	t.Run("invalid guests", func(t *testing.T) {
		_, err := q.Quote(context.Background(), "Suite", day(2026, 6, 10), day(2026, 6, 13), 0)
		assert.ErrorIs(t, err, queries.ErrInvalidStayRange)
	})
}
