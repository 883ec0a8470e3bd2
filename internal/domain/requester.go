package domain

import "time"

// Requester represents an end user allowed to submit reservations
// against the rooms of one administrator's scope.
type Requester struct {
	ID           int64
	AdminID      int64
	Name         string
	Department   string
	Designation  string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
