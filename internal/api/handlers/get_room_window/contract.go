package get_room_window

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms/models"
)

type RoomService interface {
	GetWindow(ctx context.Context, roomID int64) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
