package request

import "time"

// ScheduleMaintenanceRequest accepts any of the three date shapes: a full
// start/end range, a single due date, or no date at all.
type ScheduleMaintenanceRequest struct {
	RoomTypeName string     `json:"room_type_name" binding:"required"`
	Issue        string     `json:"issue" binding:"required"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Start        *time.Time `json:"start"`
	End          *time.Time `json:"end"`
	DueDate      *time.Time `json:"due_date"`
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
