package reject_reservation

// RejectReservationRequest HTTP request model.
// Причина отклонения обязательна.
type RejectReservationRequest struct {
	Reason string `json:"reason"`
}
