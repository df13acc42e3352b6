package request

import "github.com/shopspring/decimal"

type CreateRoomTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	NightlyRate decimal.Decimal `json:"nightly_rate" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	PricingMode string          `json:"pricing_mode" binding:"required,oneof=per_room per_bed"`
}

type UpdateRoomTypeRequest struct {
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	NightlyRate *decimal.Decimal `json:"nightly_rate"`
	Capacity    *int             `json:"capacity" binding:"omitempty,min=1"`
}
