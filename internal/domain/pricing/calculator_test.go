//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/room"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perRoomType(t *testing.T, rate int64, capacity int) *room.RoomType {
	t.Helper()
	rt, err := room.NewRoomType("Deluxe", "", "", decimal.NewFromInt(rate), capacity, room.PricePerRoom)
	require.NoError(t, err)
	return rt
}

func perBedType(t *testing.T, rate int64, capacity int) *room.RoomType {
	t.Helper()
	rt, err := room.NewRoomType("Dormitory", "", "", decimal.NewFromInt(rate), capacity, room.PricePerBed)
	require.NoError(t, err)
	return rt
}

func TestQuotePerRoom(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	rt := perRoomType(t, 1000, 2)

	t.Run("within capacity", func(t *testing.T) {
		q, err := calc.Quote(rt, 3, 2)
		require.NoError(t, err)

		assert.Equal(t, 3, q.Nights)
		assert.Equal(t, 2, q.Guests)
		assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(3000)), "base %s", q.BasePrice)
		assert.True(t, q.ExtraFee.IsZero())
		assert.True(t, q.Total.Equal(decimal.NewFromInt(3000)), "total %s", q.Total)
	})

	t.Run("two guests over capacity", func(t *testing.T) {
		q, err := calc.Quote(rt, 3, 4)
		require.NoError(t, err)

		// 2 extra guests x 200 x 3 nights
		assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(3000)))
		assert.True(t, q.ExtraFee.Equal(decimal.NewFromInt(1200)), "extra %s", q.ExtraFee)
		assert.True(t, q.Total.Equal(decimal.NewFromInt(4200)), "total %s", q.Total)
	})
}

func TestQuotePerBed(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	rt := perBedType(t, 500, 2)

	q, err := calc.Quote(rt, 2, 3)
	require.NoError(t, err)

	// Rate per guest per night, no overflow fee even beyond capacity.
	assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(3000)), "base %s", q.BasePrice)
	assert.True(t, q.ExtraFee.IsZero())
	assert.True(t, q.Total.Equal(decimal.NewFromInt(3000)), "total %s", q.Total)
}

func TestQuoteValidation(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	rt := perRoomType(t, 1000, 2)

	_, err := calc.Quote(rt, 0, 2)
	assert.ErrorIs(t, err, pricing.ErrInvalidNights)

	_, err = calc.Quote(rt, -1, 2)
	assert.ErrorIs(t, err, pricing.ErrInvalidNights)

	_, err = calc.Quote(rt, 2, 0)
	assert.ErrorIs(t, err, pricing.ErrInvalidGuests)
}

func TestQuoteIsPure(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	rt := perRoomType(t, 750, 2)

	first, err := calc.Quote(rt, 4, 3)
	require.NoError(t, err)
	second, err := calc.Quote(rt, 4, 3)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.BasePrice.Equal(second.BasePrice))
	assert.True(t, first.ExtraFee.Equal(second.ExtraFee))
}

func TestQuoteStay(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	rt := perRoomType(t, 1000, 2)

	checkIn := time.Date(2026, time.March, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 4, 11, 0, 0, 0, time.UTC)

	q, err := calc.QuoteStay(rt, checkIn, checkOut, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(3000)))

	_, err = calc.QuoteStay(rt, checkOut, checkIn, 2)
	assert.ErrorIs(t, err, pricing.ErrInvalidNights)
}

func TestCustomExtraGuestFee(t *testing.T) {
	calc := pricing.NewCalculator(decimal.NewFromInt(150))
	rt := perRoomType(t, 1000, 1)

	q, err := calc.Quote(rt, 2, 2)
	require.NoError(t, err)
	assert.True(t, q.ExtraFee.Equal(decimal.NewFromInt(300)), "extra %s", q.ExtraFee)
}
