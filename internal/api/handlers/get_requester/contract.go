package get_requester

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters/models"
)

type RequesterService interface {
	GetByID(ctx context.Context, requesterID int64, principal *identity.Principal) (*models.RequesterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
