package cancel_reservation

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
)

type ReservationService interface {
	Cancel(ctx context.Context, reservationID int64, principal *identity.Principal) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
