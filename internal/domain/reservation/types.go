package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Occupies reports whether a reservation in this status blocks the room for
// availability purposes. Pending requests never block other requests;
// cancelled and completed stays never block.
func (s Status) Occupies() bool {
	return s == StatusConfirmed
}

// CanTransitionTo encodes the staff workflow: pending requests are confirmed
// or cancelled, confirmed stays are completed after checkout or cancelled.
// Cancelled and completed are terminal; deletion is a separate admin action,
// never a transition.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}
