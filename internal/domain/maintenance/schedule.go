package maintenance

import (
	"errors"
	"time"

	"innkeeper/internal/domain/stay"
)

// ScheduleKind tags the three record shapes maintenance windows arrive in.
// Older records predate explicit ranges: some carry only a due date, the
// oldest carry no date at all. The fallback chain is a compatibility policy,
// not an accident, and every shape must keep blocking availability.
type ScheduleKind string

const (
	// KindRange blocks the explicit [start, end) range.
	KindRange ScheduleKind = "range"
	// KindDueDate blocks the entire calendar day of the due date.
	KindDueDate ScheduleKind = "due_date"
	// KindUndated blocks only "today", whenever it is resolved.
	KindUndated ScheduleKind = "undated"
)

var ErrInvalidRange = errors.New("schedule end must be after start")

// Schedule is a tagged union over the three shapes, resolved to a concrete
// interval by a single pure function instead of scattered nil checks.
type Schedule struct {
	kind    ScheduleKind
	start   time.Time
	end     time.Time
	dueDate time.Time
}

func NewRangeSchedule(start, end time.Time) (Schedule, error) {
	if !end.After(start) {
		return Schedule{}, ErrInvalidRange
	}
	return Schedule{kind: KindRange, start: start, end: end}, nil
}

func NewDueDateSchedule(dueDate time.Time) Schedule {
	return Schedule{kind: KindDueDate, dueDate: dueDate}
}

func NewUndatedSchedule() Schedule {
	return Schedule{kind: KindUndated}
}

func (s Schedule) Kind() ScheduleKind {
	return s.kind
}

// Start and End are only meaningful for KindRange schedules.
func (s Schedule) Start() *time.Time {
	if s.kind != KindRange {
		return nil
	}
	t := s.start
	return &t
}

func (s Schedule) End() *time.Time {
	if s.kind != KindRange {
		return nil
	}
	t := s.end
	return &t
}

func (s Schedule) DueDate() *time.Time {
	if s.kind != KindDueDate {
		return nil
	}
	t := s.dueDate
	return &t
}

// Resolve maps the schedule to the interval it blocks. today anchors the
// undated fallback and is supplied by the caller so resolution stays pure.
func (s Schedule) Resolve(today time.Time) stay.Interval {
	switch s.kind {
	case KindRange:
		iv, err := stay.NewInterval(s.start, s.end)
		if err != nil {
			// Unreachable for schedules built through NewRangeSchedule.
			return stay.DayOf(today)
		}
		return iv
	case KindDueDate:
		return stay.DayOf(s.dueDate)
	default:
		return stay.DayOf(today)
	}
}
