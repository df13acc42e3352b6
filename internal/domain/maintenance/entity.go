package maintenance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomType     = errors.New("maintenance window requires a room type")
	ErrEmptyIssue        = errors.New("maintenance window requires an issue description")
	ErrInvalidStatus     = errors.New("invalid maintenance status")
	ErrInvalidPriority   = errors.New("invalid maintenance priority")
	ErrWindowCompleted   = errors.New("maintenance window is already completed")
	ErrInvalidTransition = errors.New("invalid maintenance status transition")
)

// Window is a scheduled maintenance block for one room type. Status is
// advanced manually by staff; windows never auto-expire.
type Window struct {
	id           uuid.UUID
	roomTypeName string
	issue        string
	priority     Priority
	status       Status
	schedule     Schedule
	createdAt    time.Time
	updatedAt    time.Time
}

func NewWindow(roomTypeName, issue string, priority Priority, schedule Schedule) (*Window, error) {
	roomTypeName = strings.TrimSpace(roomTypeName)
	if roomTypeName == "" {
		return nil, ErrEmptyRoomType
	}
	issue = strings.TrimSpace(issue)
	if issue == "" {
		return nil, ErrEmptyIssue
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &Window{
		id:           uuid.New(),
		roomTypeName: roomTypeName,
		issue:        issue,
		priority:     priority,
		status:       StatusPending,
		schedule:     schedule,
	}, nil
}

func ReconstructWindow(
	id uuid.UUID,
	roomTypeName, issue string,
	priority Priority,
	status Status,
	schedule Schedule,
	createdAt, updatedAt time.Time,
) *Window {
	return &Window{
		id:           id,
		roomTypeName: roomTypeName,
		issue:        issue,
		priority:     priority,
		status:       status,
		schedule:     schedule,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (w *Window) ID() uuid.UUID        { return w.id }
func (w *Window) RoomTypeName() string { return w.roomTypeName }
func (w *Window) Issue() string        { return w.issue }
func (w *Window) Priority() Priority   { return w.priority }
func (w *Window) Status() Status       { return w.status }
func (w *Window) Schedule() Schedule   { return w.schedule }
func (w *Window) CreatedAt() time.Time { return w.createdAt }
func (w *Window) UpdatedAt() time.Time { return w.updatedAt }

// AdvanceTo moves the window to the given status. Completed is terminal.
func (w *Window) AdvanceTo(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if w.status == StatusCompleted {
		return ErrWindowCompleted
	}
	if status == w.status {
		return ErrInvalidTransition
	}
	w.status = status
	return nil
}
