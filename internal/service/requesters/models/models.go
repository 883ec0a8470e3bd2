package models

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// Request модели

// CreateRequesterRequest запрос на регистрацию пользователя
// в зоне ответственности администратора
type CreateRequesterRequest struct {
	AdminID     int64  `json:"adminId"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Response модели

// RequesterResponse ответ с данными пользователя.
// Хэш пароля наружу не отдается.
type RequesterResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	Email       string    `json:"email"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainRequester конвертирует domain модель в DTO
func FromDomainRequester(r *domain.Requester) *RequesterResponse {
	if r == nil {
		return nil
	}

	return &RequesterResponse{
		ID:          r.ID,
		Name:        r.Name,
		Department:  r.Department,
		Designation: r.Designation,
		Email:       r.Email,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
