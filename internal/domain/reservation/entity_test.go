//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

func newFactory() *reservation.Factory {
	return reservation.NewFactory(clock.NewMockClock(fixedNow), pricing.NewDefaultCalculator())
}

func suiteRoom(t *testing.T) *room.RoomType {
	t.Helper()
	rt, err := room.NewRoomType("Suite", "", "", decimal.NewFromInt(1000), 2, room.PricePerRoom)
	require.NoError(t, err)
	return rt
}

func guest(t *testing.T) reservation.Guest {
	t.Helper()
	g, err := reservation.NewGuest("Maria", "Santos", "maria@example.com", "+63 912 000 0000")
	require.NoError(t, err)
	return g
}

func stayInterval(t *testing.T, nights int) stay.Interval {
	t.Helper()
	start := time.Date(2026, time.March, 1, 15, 0, 0, 0, time.UTC)
	iv, err := stay.NewInterval(start, start.AddDate(0, 0, nights))
	require.NoError(t, err)
	return iv
}

func TestCreateReservation(t *testing.T) {
	factory := newFactory()
	rt := suiteRoom(t)

	t.Run("creates pending reservation with frozen payment", func(t *testing.T) {
		res, err := factory.CreateReservation(rt, guest(t), stayInterval(t, 3), 2)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, "Suite", res.RoomTypeName())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.False(t, res.Occupies(), "pending reservations never block")
		assert.Equal(t, fixedNow, res.CreatedAt())

		pay := res.Payment()
		assert.Equal(t, 3, pay.Nights)
		assert.Equal(t, 2, pay.Guests)
		assert.True(t, pay.Total.Equal(decimal.NewFromInt(3000)), "total %s", pay.Total)
	})

	t.Run("payment survives later rate changes", func(t *testing.T) {
		res, err := factory.CreateReservation(rt, guest(t), stayInterval(t, 2), 2)
		require.NoError(t, err)
		before := res.Payment()

		require.NoError(t, rt.ChangeRate(decimal.NewFromInt(9999)))

		after := res.Payment()
		assert.True(t, before.Total.Equal(after.Total))
		assert.True(t, before.BasePrice.Equal(after.BasePrice))
	})

	t.Run("rejects non-positive guest count", func(t *testing.T) {
		_, err := factory.CreateReservation(rt, guest(t), stayInterval(t, 1), 0)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestNum)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    reservation.Status
		to      reservation.Status
		allowed bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusCompleted, false},
		{reservation.StatusConfirmed, reservation.StatusCompleted, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{reservation.StatusConfirmed, reservation.StatusPending, false},
		{reservation.StatusCancelled, reservation.StatusConfirmed, false},
		{reservation.StatusCompleted, reservation.StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionTo(t *testing.T) {
	factory := newFactory()
	rt := suiteRoom(t)

	res, err := factory.CreateReservation(rt, guest(t), stayInterval(t, 2), 2)
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	require.NoError(t, res.TransitionTo(reservation.StatusConfirmed, later))
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
	assert.True(t, res.Occupies())
	assert.Equal(t, later, res.UpdatedAt())

	err = res.TransitionTo(reservation.StatusPending, later)
	assert.ErrorIs(t, err, reservation.ErrInvalidTransition)

	err = res.TransitionTo(reservation.Status("unknown"), later)
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestGuestValidation(t *testing.T) {
	_, err := reservation.NewGuest("", "Santos", "maria@example.com", "")
	assert.ErrorIs(t, err, reservation.ErrEmptyGuestName)

	_, err = reservation.NewGuest("Maria", "Santos", "not-an-email", "")
	assert.ErrorIs(t, err, reservation.ErrInvalidEmail)

	g, err := reservation.NewGuest("  Maria ", "Santos", " maria@example.com ", "")
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", g.FullName())
	assert.Equal(t, "maria@example.com", g.Email())
}
