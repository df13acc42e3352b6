package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type RoomTypeView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Capacity    int             `json:"capacity"`
	PricingMode string          `json:"pricing_mode"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PaymentView struct {
	Nights    int             `json:"nights"`
	Guests    int             `json:"guests"`
	BasePrice decimal.Decimal `json:"base_price"`
	ExtraFee  decimal.Decimal `json:"extra_fee"`
	Total     decimal.Decimal `json:"total"`
}

type ReservationView struct {
	ID           uuid.UUID   `json:"id"`
	RoomTypeName string      `json:"room_type_name"`
	GuestName    string      `json:"guest_name"`
	GuestSurname string      `json:"guest_surname"`
	GuestEmail   string      `json:"guest_email"`
	GuestPhone   string      `json:"guest_phone"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	GuestCount   int         `json:"guest_count"`
	Status       string      `json:"status"`
	Payment      PaymentView `json:"payment"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type MaintenanceView struct {
	ID           uuid.UUID  `json:"id"`
	RoomTypeName string     `json:"room_type_name"`
	Issue        string     `json:"issue"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ScheduleKind string     `json:"schedule_kind"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Read store ports

type RoomTypeReadStore interface {
	FindAll(ctx context.Context) ([]*RoomTypeView, error)
	FindByName(ctx context.Context, name string) (*RoomTypeView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context, status *string) ([]*ReservationView, error)
}

type MaintenanceReadStore interface {
	FindAll(ctx context.Context) ([]*MaintenanceView, error)
}
