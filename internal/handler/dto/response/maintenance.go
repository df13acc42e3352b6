package response

import (
	"time"

	"github.com/google/uuid"

	"innkeeper/internal/domain/maintenance"
)

type MaintenanceResponse struct {
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
}

func FromMaintenanceWindow(w *maintenance.Window) *MaintenanceResponse {
	s := w.Schedule()
	return &MaintenanceResponse{
		ID:           w.ID(),
		RoomTypeName: w.RoomTypeName(),
		Issue:        w.Issue(),
		Priority:     w.Priority().String(),
		Status:       w.Status().String(),
		ScheduleKind: string(s.Kind()),
		Start:        s.Start(),
		End:          s.End(),
		DueDate:      s.DueDate(),
		CreatedAt:    w.CreatedAt(),
	}
}
