package bootstrap

import (
	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		clock.NewRealClock,
		NewPriceCalculator,
		reservation.NewFactory,
		shared.NewIndexCache,
	),
)

func NewPriceCalculator(cfg config.Config) *pricing.Calculator {
	fee, err := decimal.NewFromString(cfg.Booking.ExtraGuestFee)
	if err != nil {
		panic("invalid BOOKING_EXTRA_GUEST_FEE: " + err.Error())
	}
	return pricing.NewCalculator(fee)
}
