package replace_window

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// RoomRepository интерфейс репозитория переговорных
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ReplaceWindow(ctx context.Context, roomID int64, window domain.AvailabilityWindow) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	PurgeByRoom(ctx context.Context, roomID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
