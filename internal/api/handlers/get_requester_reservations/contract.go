package get_requester_reservations

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/reservations/models"
)

type ReservationService interface {
	GetRequesterReservations(ctx context.Context, requesterID int64, status *string, principal *identity.Principal) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
