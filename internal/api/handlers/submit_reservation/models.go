package submit_reservation

import (
	"time"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	submitReservation "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/submit_reservation"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	RoomID    int64   `json:"roomId"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`              // "2025-10-15"
	Weekday   string  `json:"weekday,omitempty"` // опционально, выводится из даты
	StartTime string  `json:"startTime"`         // "10:00"
	EndTime   string  `json:"endTime"`           // "11:00"
	Mode      string  `json:"mode"`
	JoinLink  *string `json:"joinLink,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	RoomID      int64  `json:"roomId"`
	RequesterID *int64 `json:"requesterId,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Автор берется из принципала, а не из тела запроса.
func (r *SubmitReservationRequest) ToUseCaseRequest(principal *identity.Principal) (*submitReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	var requesterID *int64
	if principal.Role == identity.RoleRequester {
		requesterID = principal.RequesterID
	}

	return &submitReservation.Request{
		RoomID:      r.RoomID,
		RequesterID: requesterID,
		Title:       r.Title,
		Date:        date,
		Weekday:     r.Weekday,
		StartTime:   startTime,
		EndTime:     endTime,
		Mode:        r.Mode,
		JoinLink:    r.JoinLink,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		RequesterID: resp.RequesterID,
		Title:       resp.Title,
		Date:        resp.Date.Format(domain.DateFormat),
		Weekday:     string(resp.Weekday),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Mode:        resp.Mode,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
