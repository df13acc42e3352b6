package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"innkeeper/internal/domain/room"
)

type RoomTypeResponse struct {
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

func FromRoomType(rt *room.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:          rt.ID(),
		Name:        rt.Name(),
		Slug:        rt.Slug(),
		Description: rt.Description(),
		Image:       rt.Image(),
		NightlyRate: rt.NightlyRate(),
		Capacity:    rt.Capacity(),
		PricingMode: rt.PricingMode().String(),
		CreatedAt:   rt.CreatedAt(),
		UpdatedAt:   rt.UpdatedAt(),
	}
}
