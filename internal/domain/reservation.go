package domain

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusAccepted  ReservationStatus = "accepted"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a single time-slot claim against one room
type Reservation struct {
	ID     int64
	RoomID int64

	// RequesterID is nil when the room identity itself is the author
	RequesterID *int64

	Title           string
	Date            time.Time
	Weekday         Weekday
	StartTime       types.TimeString
	EndTime         types.TimeString
	Mode            string
	Status          ReservationStatus
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCommitted returns true if the reservation blocks its interval for
// new claims (pending or accepted).
func (r *Reservation) IsCommitted() bool {
	return r.Status == StatusPending || r.Status == StatusAccepted
}

// IsCancelled returns true if the reservation was cancelled by its author
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsResolved returns true if the reservation no longer blocks its interval
func (r *Reservation) IsResolved() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

// OwnedBy returns true if the reservation was authored by the given requester
func (r *Reservation) OwnedBy(requesterID int64) bool {
	return r.RequesterID != nil && *r.RequesterID == requesterID
}

// RoomReservationsFilter фильтр для выборки бронирований переговорной
type RoomReservationsFilter struct {
	RoomID          int64              // Обязательный параметр
	Date            *time.Time         // Фильтр по дате (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeResolved bool               // Включать ли отклоненные и отмененные
}
