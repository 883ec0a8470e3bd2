package create_room

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest, principal *identity.Principal) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
