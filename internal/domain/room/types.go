package room

// PricingMode selects how a room type charges for a stay.
type PricingMode string

const (
	// PricePerRoom charges the nightly rate once per night, with an
	// extra-guest surcharge beyond capacity.
	PricePerRoom PricingMode = "per_room"
	// PricePerBed charges the nightly rate per guest per night
	// (dormitory-style); capacity is advisory only.
	PricePerBed PricingMode = "per_bed"
)

func (m PricingMode) String() string {
	return string(m)
}

func (m PricingMode) IsValid() bool {
	switch m {
	case PricePerRoom, PricePerBed:
		return true
	default:
		return false
	}
}
