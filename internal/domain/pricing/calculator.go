// Package pricing computes the price of a stay. The computation is pure:
// the same room, night count and guest count always produce the same quote,
// and the result is frozen onto the reservation at creation time. Later rate
// changes never touch already-stored payments.
package pricing

import (
	"errors"
	"time"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/domain/stay"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNights = errors.New("nights must be positive")
	ErrInvalidGuests = errors.New("guests must be positive")
)

// DefaultExtraGuestFee is the per-guest-per-night surcharge, in currency
// units, applied to per-room pricing when guests exceed capacity.
var DefaultExtraGuestFee = decimal.NewFromInt(200)

// Quote is the full price breakdown for a stay.
type Quote struct {
	Nights    int
	Guests    int
	BasePrice decimal.Decimal
	ExtraFee  decimal.Decimal
	Total     decimal.Decimal
}

type Calculator struct {
	extraGuestFee decimal.Decimal
}

func NewCalculator(extraGuestFee decimal.Decimal) *Calculator {
	if !extraGuestFee.IsPositive() {
		extraGuestFee = DefaultExtraGuestFee
	}
	return &Calculator{extraGuestFee: extraGuestFee}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultExtraGuestFee)
}

func (c *Calculator) ExtraGuestFee() decimal.Decimal {
	return c.extraGuestFee
}

// Quote prices a stay of the given length and party size.
//
// Per-bed rooms charge rate x guests x nights with no overflow fee; their
// capacity is advisory. Per-room rooms charge rate x nights plus
// extraGuestFee x nights for every guest beyond capacity.
func (c *Calculator) Quote(rt *room.RoomType, nights, guests int) (Quote, error) {
	if nights <= 0 {
		return Quote{}, ErrInvalidNights
	}
	if guests <= 0 {
		return Quote{}, ErrInvalidGuests
	}

	nightsDec := decimal.NewFromInt(int64(nights))
	rate := rt.NightlyRate()

	if rt.PricingMode() == room.PricePerBed {
		base := rate.Mul(decimal.NewFromInt(int64(guests))).Mul(nightsDec)
		return Quote{
			Nights:    nights,
			Guests:    guests,
			BasePrice: base,
			ExtraFee:  decimal.Zero,
			Total:     base,
		}, nil
	}

	base := rate.Mul(nightsDec)
	extraGuests := guests - rt.Capacity()
	if extraGuests < 0 {
		extraGuests = 0
	}
	extraFee := c.extraGuestFee.Mul(decimal.NewFromInt(int64(extraGuests))).Mul(nightsDec)

	return Quote{
		Nights:    nights,
		Guests:    guests,
		BasePrice: base,
		ExtraFee:  extraFee,
		Total:     base.Add(extraFee),
	}, nil
}

// QuoteStay prices the interval [checkIn, checkOut) by deriving the night
// count first. Checkout must strictly exceed check-in; callers validate the
// range before quoting.
func (c *Calculator) QuoteStay(rt *room.RoomType, checkIn, checkOut time.Time, guests int) (Quote, error) {
	if !checkOut.After(checkIn) {
		return Quote{}, ErrInvalidNights
	}
	return c.Quote(rt, stay.Nights(checkIn, checkOut), guests)
}
