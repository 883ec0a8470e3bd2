package set_room_active

// SetRoomActiveRequest HTTP request model
type SetRoomActiveRequest struct {
	Active bool `json:"active"`
}
