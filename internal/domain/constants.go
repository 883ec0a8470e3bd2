package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelledByUserReason фиксированная причина при отмене бронирования автором
const CancelledByUserReason = "Cancelled by user"

// Business validation constants
const (
	MaxTitleLength           = 200
	MaxRejectionReasonLength = 500
)

// CommittedStatuses список статусов, блокирующих интервал для новых бронирований.
// Используется при проверке пересечений.
var CommittedStatuses = []ReservationStatus{
	StatusPending,
	StatusAccepted,
}

// ResolvedStatuses список статусов, не блокирующих интервал
var ResolvedStatuses = []ReservationStatus{
	StatusRejected,
	StatusCancelled,
}
