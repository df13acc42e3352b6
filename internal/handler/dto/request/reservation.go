package request

import "time"

type CreateReservationRequest struct {
	RoomTypeName string    `json:"room_type_name" binding:"required"`
	GuestName    string    `json:"guest_name" binding:"required"`
	GuestSurname string    `json:"guest_surname"`
	GuestEmail   string    `json:"guest_email" binding:"required,email"`
	GuestPhone   string    `json:"guest_phone"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
	GuestCount   int       `json:"guest_count" binding:"required,min=1"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
