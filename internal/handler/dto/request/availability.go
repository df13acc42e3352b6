package request

import "time"

// Availability queries bind from the query string; timestamps are RFC 3339.

type CheckAvailabilityRequest struct {
	RoomTypeName string    `form:"room_type" binding:"required"`
	CheckIn      time.Time `form:"check_in" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut     time.Time `form:"check_out" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type QuoteRequest struct {
	RoomTypeName string    `form:"room_type" binding:"required"`
	CheckIn      time.Time `form:"check_in" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut     time.Time `form:"check_out" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Guests       int       `form:"guests" binding:"required,min=1"`
}

type RevenueRequest struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
