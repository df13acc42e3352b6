package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"innkeeper/internal/domain/reservation"
)

type PaymentResponse struct {
	Nights    int             `json:"nights"`
	Guests    int             `json:"guests"`
	BasePrice decimal.Decimal `json:"base_price"`
	ExtraFee  decimal.Decimal `json:"extra_fee"`
	Total     decimal.Decimal `json:"total"`
}

type ReservationResponse struct {
	ID           uuid.UUID       `json:"id"`
	RoomTypeName string          `json:"room_type_name"`
	GuestName    string          `json:"guest_name"`
	GuestSurname string          `json:"guest_surname"`
	GuestEmail   string          `json:"guest_email"`
	GuestPhone   string          `json:"guest_phone"`
	CheckIn      time.Time       `json:"check_in"`
	CheckOut     time.Time       `json:"check_out"`
	GuestCount   int             `json:"guest_count"`
	Status       string          `json:"status"`
	Payment      PaymentResponse `json:"payment"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	p := res.Payment()
	return &ReservationResponse{
		ID:           res.ID(),
		RoomTypeName: res.RoomTypeName(),
		GuestName:    res.Guest().Name(),
		GuestSurname: res.Guest().Surname(),
		GuestEmail:   res.Guest().Email(),
		GuestPhone:   res.Guest().Phone(),
		CheckIn:      res.CheckIn(),
		CheckOut:     res.CheckOut(),
		GuestCount:   res.GuestCount(),
		Status:       res.Status().String(),
		Payment: PaymentResponse{
			Nights:    p.Nights,
			Guests:    p.Guests,
			BasePrice: p.BasePrice,
			ExtraFee:  p.ExtraFee,
			Total:     p.Total,
		},
		CreatedAt: res.CreatedAt(),
	}
}
