package queries

import (
	"context"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/pricing"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"
)

var (
	ErrRoomTypeNotFound = errs.ErrRoomTypeNotFound
	ErrInvalidStayRange = errs.ErrInvalidStayRange
)

// AvailabilityView is the reactive conflict probe result rendered as inline
// warnings while the guest edits the booking form. Both conflict kinds are
// reported; the form shows a separate banner for each.
type AvailabilityView struct {
	RoomTypeName        string    `json:"room_type_name"`
	CheckIn             time.Time `json:"check_in"`
	CheckOut            time.Time `json:"check_out"`
	Available           bool      `json:"available"`
	ReservationConflict bool      `json:"reservation_conflict"`
	MaintenanceConflict bool      `json:"maintenance_conflict"`
}

type QuoteView struct {
	RoomTypeName string      `json:"room_type_name"`
	PricingMode  string      `json:"pricing_mode"`
	Payment      PaymentView `json:"payment"`
}

type AvailabilityQueries interface {
	Check(ctx context.Context, roomTypeName string, checkIn, checkOut time.Time) (*AvailabilityView, error)
	Quote(ctx context.Context, roomTypeName string, checkIn, checkOut time.Time, guests int) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	roomStore  RoomTypeReadStore
	cache      *shared.IndexCache
	calculator *pricing.Calculator
}

func NewAvailabilityQueries(
	roomStore RoomTypeReadStore,
	cache *shared.IndexCache,
	calculator *pricing.Calculator,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		roomStore:  roomStore,
		cache:      cache,
		calculator: calculator,
	}
}

func (q *availabilityQueriesImpl) Check(
	ctx context.Context,
	roomTypeName string,
	checkIn, checkOut time.Time,
) (*AvailabilityView, error) {
	rt, err := q.findRoom(ctx, roomTypeName)
	if err != nil {
		return nil, err
	}

	candidate, err := stay.NewInterval(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	rIdx, mIdx := q.cache.Indices()
	result, err := availability.CheckConflict(rt.Name(), candidate, rIdx, mIdx)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	return &AvailabilityView{
		RoomTypeName:        rt.Name(),
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		Available:           !result.HasConflict(),
		ReservationConflict: result.Reservation,
		MaintenanceConflict: result.Maintenance,
	}, nil
}

func (q *availabilityQueriesImpl) Quote(
	ctx context.Context,
	roomTypeName string,
	checkIn, checkOut time.Time,
	guests int,
) (*QuoteView, error) {
	rt, err := q.findRoom(ctx, roomTypeName)
	if err != nil {
		return nil, err
	}

	quote, err := q.calculator.QuoteStay(rt, checkIn, checkOut, guests)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	return &QuoteView{
		RoomTypeName: rt.Name(),
		PricingMode:  rt.PricingMode().String(),
		Payment: PaymentView{
			Nights:    quote.Nights,
			Guests:    quote.Guests,
			BasePrice: quote.BasePrice,
			ExtraFee:  quote.ExtraFee,
			Total:     quote.Total,
		},
	}, nil
}

func (q *availabilityQueriesImpl) findRoom(ctx context.Context, name string) (*room.RoomType, error) {
	view, err := q.roomStore.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return room.ReconstructRoomType(
		view.ID,
		view.Name,
		view.Slug,
		view.Description,
		view.Image,
		view.NightlyRate,
		view.Capacity,
		room.PricingMode(view.PricingMode),
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}
