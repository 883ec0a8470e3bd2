package requesters

import (
	"context"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// RequesterRepository интерфейс репозитория пользователей
type RequesterRepository interface {
	Create(ctx context.Context, requester *domain.Requester) (*domain.Requester, error)
	GetByID(ctx context.Context, id int64) (*domain.Requester, error)
	GetByEmail(ctx context.Context, email string) (*domain.Requester, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
