package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

func existingInterval(start, end types.TimeString) *Reservation {
	return &Reservation{
		ID:        1,
		StartTime: start,
		EndTime:   end,
		Status:    StatusAccepted,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		start, end   types.TimeString
		eStart, eEnd types.TimeString
		wantConflict bool
	}{
		{
			name:  "candidate entirely before existing",
			start: "08:00", end: "09:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: false,
		},
		{
			name:  "candidate entirely after existing",
			start: "12:00", end: "13:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: false,
		},
		{
			name:  "candidate starts exactly when existing ends",
			start: "10:00", end: "11:00",
			eStart: "09:00", eEnd: "10:00",
			wantConflict: false,
		},
		{
			name:  "candidate ends exactly when existing starts",
			start: "09:00", end: "10:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: false,
		},
		{
			name:  "candidate overlaps the head of existing",
			start: "09:30", end: "10:30",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "candidate overlaps the tail of existing",
			start: "10:30", end: "11:30",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "candidate contained in existing",
			start: "10:15", end: "10:45",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "candidate contains existing",
			start: "09:00", end: "12:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "identical intervals",
			start: "10:00", end: "11:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "same start shorter candidate",
			start: "10:00", end: "10:30",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
		{
			name:  "same end later candidate start",
			start: "10:30", end: "11:00",
			eStart: "10:00", eEnd: "11:00",
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := existingInterval(tt.eStart, tt.eEnd)
			assert.Equal(t, tt.wantConflict, Overlaps(tt.start, tt.end, existing))
		})
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	// Если A конфликтует с B, то и B конфликтует с A
	pairs := []struct {
		aStart, aEnd types.TimeString
		bStart, bEnd types.TimeString
	}{
		{"09:30", "10:30", "10:00", "11:00"},
		{"10:00", "11:00", "10:15", "10:45"},
		{"10:00", "11:00", "09:00", "10:00"},
		{"08:00", "09:00", "12:00", "13:00"},
	}

	for _, p := range pairs {
		forward := Overlaps(p.aStart, p.aEnd, existingInterval(p.bStart, p.bEnd))
		backward := Overlaps(p.bStart, p.bEnd, existingInterval(p.aStart, p.aEnd))
		assert.Equal(t, forward, backward,
			"asymmetric result for [%s, %s) vs [%s, %s)", p.aStart, p.aEnd, p.bStart, p.bEnd)
	}
}

func TestConflictingReservationIDs(t *testing.T) {
	existing := []*Reservation{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: StatusAccepted},
		{ID: 2, StartTime: "10:00", EndTime: "11:00", Status: StatusPending},
		{ID: 3, StartTime: "11:00", EndTime: "12:00", Status: StatusRejected},
		{ID: 4, StartTime: "11:00", EndTime: "12:00", Status: StatusCancelled},
	}

	t.Run("pending and accepted block, resolved never block", func(t *testing.T) {
		ids := ConflictingReservationIDs("09:30", "11:30", existing)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("rejected slot is free for a new claim", func(t *testing.T) {
		ids := ConflictingReservationIDs("11:00", "12:00", existing)
		assert.Empty(t, ids)
	})

	t.Run("no existing reservations", func(t *testing.T) {
		assert.Empty(t, ConflictingReservationIDs("09:00", "10:00", nil))
	})
}
