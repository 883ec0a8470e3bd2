package models

import (
	"errors"
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetRoomReservationsRequest запрос списка бронирований переговорной
type GetRoomReservationsRequest struct {
	RoomID          int64      `json:"roomId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeResolved bool       `json:"includeResolved,omitempty"` // Включить отклоненные и отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomReservationsRequest) ToDomainFilter() (domain.RoomReservationsFilter, error) {
	filter := domain.RoomReservationsFilter{
		RoomID:          r.RoomID,
		Date:            r.Date,
		IncludeResolved: r.IncludeResolved,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64  `json:"id"`
	RoomID      int64  `json:"roomId"`
	RequesterID *int64 `json:"requesterId,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`    // "2025-10-15"
	Weekday     string `json:"weekday"` // "Monday"
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`

	RejectionReason *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// PendingCountResponse ответ счетчика ожидающих бронирований
type PendingCountResponse struct {
	RoomID       int64 `json:"roomId"`
	PendingCount int64 `json:"pendingCount"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		RoomID:          r.RoomID,
		RequesterID:     r.RequesterID,
		Title:           r.Title,
		Date:            r.Date.Format(domain.DateFormat),
		Weekday:         string(r.Weekday),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		Mode:            r.Mode,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if dto := FromDomainReservation(reservation); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
