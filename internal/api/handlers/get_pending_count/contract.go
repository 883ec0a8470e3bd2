package get_pending_count

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/reservations/models"
)

type ReservationService interface {
	CountPending(ctx context.Context, roomID int64, principal *identity.Principal) (*models.PendingCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
