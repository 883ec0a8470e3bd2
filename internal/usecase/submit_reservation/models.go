package submit_reservation

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// Request входные данные создания бронирования.
// RequesterID = nil, когда бронирование создает identity самой переговорной.
type Request struct {
	RoomID      int64
	RequesterID *int64
	Title       string
	Date        time.Time
	Weekday     string // имя дня недели, нормализуется; пустое - выводится из даты
	StartTime   types.TimeString
	EndTime     types.TimeString
	Mode        string
	JoinLink    *string
}

// Response результат создания бронирования
type Response struct {
	ID          int64
	RoomID      int64
	RequesterID *int64
	Title       string
	Date        time.Time
	Weekday     domain.Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
	Mode        string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func responseFromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:          r.ID,
		RoomID:      r.RoomID,
		RequesterID: r.RequesterID,
		Title:       r.Title,
		Date:        r.Date,
		Weekday:     r.Weekday,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Mode:        r.Mode,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
