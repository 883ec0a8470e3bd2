package domain

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// AvailabilityWindow describes the recurring weekly availability of a room:
// the set of allowed weekdays plus one daily [start, end) time window shared
// across all allowed days.
type AvailabilityWindow struct {
	Weekdays   []Weekday
	DailyStart types.TimeString
	DailyEnd   types.TimeString
}

// AllowsDay returns true if reservations may be requested on the given weekday
func (w *AvailabilityWindow) AllowsDay(day Weekday) bool {
	for _, d := range w.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Contains returns true if [start, end) lies inside the daily window
// and start strictly precedes end.
func (w *AvailabilityWindow) Contains(start, end types.TimeString) bool {
	if !start.IsBefore(end) {
		return false
	}
	if start.IsBefore(w.DailyStart) {
		return false
	}
	if end.IsAfter(w.DailyEnd) {
		return false
	}
	return true
}

// IsValid returns true if the daily start strictly precedes the daily end
func (w *AvailabilityWindow) IsValid() bool {
	return w.DailyStart.IsBefore(w.DailyEnd)
}

// Room represents a bookable meeting room with its own login identity
type Room struct {
	ID           int64
	Name         string
	ApproverName string
	Login        string
	PasswordHash string
	Active       bool
	Window       AvailabilityWindow

	// JoinLink is the shared web-conference link of the room. The legacy
	// system stores the link submitted with a reservation on the room
	// itself, not on the reservation. Kept as-is.
	JoinLink *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
