package availability

import (
	"errors"

	"innkeeper/internal/domain/stay"
)

// ErrInvalidCandidate is returned when a candidate interval is degenerate.
// Treating it as "no conflict" would silently approve a nonsensical booking,
// so the detector rejects it outright.
var ErrInvalidCandidate = errors.New("candidate interval is invalid")

// ConflictResult reports reservation and maintenance conflicts
// independently. The booking form shows a separate warning for each, so
// both flags can be set at once; callers must not short-circuit on the
// first.
type ConflictResult struct {
	Reservation bool
	Maintenance bool
}

func (r ConflictResult) HasConflict() bool {
	return r.Reservation || r.Maintenance
}

// CheckConflict tests a candidate stay against both indices for one room
// type. It runs reactively while the guest edits the form and once more
// immediately before the reservation write; the indices may have moved in
// between, which is why the second pass exists. The check and the write are
// still two separate steps with no atomicity between them — two concurrent
// submissions can both pass and double-book, which staff resolve during
// manual confirmation.
func CheckConflict(roomTypeName string, candidate stay.Interval, reservations, maintenance Index) (ConflictResult, error) {
	if candidate.IsZero() || !candidate.End().After(candidate.Start()) {
		return ConflictResult{}, ErrInvalidCandidate
	}

	var result ConflictResult
	for _, iv := range reservations.For(roomTypeName) {
		if candidate.Overlaps(iv) {
			result.Reservation = true
			break
		}
	}
	for _, iv := range maintenance.For(roomTypeName) {
		if candidate.Overlaps(iv) {
			result.Maintenance = true
			break
		}
	}
	return result, nil
}
