package reservation

import (
	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/pkg/clock"
)

// Factory builds new guest reservations. Pricing runs exactly once here;
// the resulting Payment travels with the reservation for its whole life.
type Factory struct {
	clock      clock.Clock
	calculator *pricing.Calculator
}

func NewFactory(clock clock.Clock, calculator *pricing.Calculator) *Factory {
	return &Factory{
		clock:      clock,
		calculator: calculator,
	}
}

// CreateReservation validates the party size, prices the stay and returns a
// pending reservation. Conflict checking happens in the application layer
// against the live indices; the factory only owns construction and pricing.
func (f *Factory) CreateReservation(
	rt *room.RoomType,
	guest Guest,
	interval stay.Interval,
	guestCount int,
) (*Reservation, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestNum
	}

	quote, err := f.calculator.Quote(rt, stay.Nights(interval.Start(), interval.End()), guestCount)
	if err != nil {
		return nil, err
	}

	return newReservation(
		rt.Name(),
		guest,
		interval,
		guestCount,
		PaymentFromQuote(quote),
		f.clock.Now(),
	), nil
}
