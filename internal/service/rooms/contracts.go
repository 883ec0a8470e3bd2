package rooms

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// RoomRepository интерфейс репозитория переговорных
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	SetActive(ctx context.Context, roomID int64, active bool) error
	Delete(ctx context.Context, roomID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
