package models

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание переговорной
type CreateRoomRequest struct {
	Name         string   `json:"name"`
	ApproverName string   `json:"approverName"`
	Login        string   `json:"login"`
	Password     string   `json:"password"`
	Weekdays     []string `json:"weekdays"`
	DailyStart   string   `json:"dailyStart"` // "09:00"
	DailyEnd     string   `json:"dailyEnd"`   // "18:00"
}

// Response модели

// WindowResponse окно доступности переговорной
type WindowResponse struct {
	Weekdays   []string `json:"weekdays"`
	DailyStart string   `json:"dailyStart"`
	DailyEnd   string   `json:"dailyEnd"`
}

// RoomResponse ответ с данными переговорной.
// Учетные данные наружу не отдаются.
type RoomResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	ApproverName string         `json:"approverName"`
	Login        string         `json:"login"`
	Active       bool           `json:"active"`
	Window       WindowResponse `json:"window"`
	JoinLink     *string        `json:"joinLink,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Методы конвертации

// FromDomainWindow конвертирует окно доступности в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	weekdays := make([]string, len(w.Weekdays))
	for i, day := range w.Weekdays {
		weekdays[i] = string(day)
	}
	return &WindowResponse{
		Weekdays:   weekdays,
		DailyStart: w.DailyStart.String(),
		DailyEnd:   w.DailyEnd.String(),
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		ApproverName: r.ApproverName,
		Login:        r.Login,
		Active:       r.Active,
		Window:       *FromDomainWindow(&r.Window),
		JoinLink:     r.JoinLink,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
