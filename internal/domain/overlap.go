package domain

import "github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"

// Overlaps reports whether the candidate interval [start, end) collides
// with an existing reservation, using the exact three-clause rule of the
// legacy system:
//
//	(start <= E.start AND end > E.start) OR
//	(start <  E.end   AND end >= E.end)  OR
//	(start >= E.start AND end <= E.end)
//
// The disjunction is deliberately inclusive at shared boundaries in one
// direction. It is part of the observable contract exercised by existing
// clients, so it must not be reduced to a plain half-open interval test.
func Overlaps(start, end types.TimeString, existing *Reservation) bool {
	eStart := existing.StartTime
	eEnd := existing.EndTime

	// start <= E.start AND end > E.start
	if !start.IsAfter(eStart) && end.IsAfter(eStart) {
		return true
	}
	// start < E.end AND end >= E.end
	if start.IsBefore(eEnd) && !end.IsBefore(eEnd) {
		return true
	}
	// start >= E.start AND end <= E.end
	if !start.IsBefore(eStart) && !end.IsAfter(eEnd) {
		return true
	}
	return false
}

// ConflictingReservationIDs returns the ids of committed reservations whose
// intervals collide with the candidate [start, end). Rejected and cancelled
// reservations never block a new claim.
func ConflictingReservationIDs(start, end types.TimeString, existing []*Reservation) []int64 {
	var ids []int64
	for _, reservation := range existing {
		if !reservation.IsCommitted() {
			continue
		}
		if Overlaps(start, end, reservation) {
			ids = append(ids, reservation.ID)
		}
	}
	return ids
}
