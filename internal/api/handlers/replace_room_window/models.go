package replace_room_window

import (
	replaceWindow "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/replace_window"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// ReplaceWindowRequest HTTP request model.
// Окно заменяется целиком.
type ReplaceWindowRequest struct {
	Weekdays   []string `json:"weekdays"`
	DailyStart string   `json:"dailyStart"` // "09:00"
	DailyEnd   string   `json:"dailyEnd"`   // "18:00"
}

// ReplaceWindowResponse HTTP response model
type ReplaceWindowResponse struct {
	RoomID     int64    `json:"roomId"`
	Weekdays   []string `json:"weekdays"`
	DailyStart string   `json:"dailyStart"`
	DailyEnd   string   `json:"dailyEnd"`
	Purged     int64    `json:"purgedReservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceWindowRequest) ToUseCaseRequest(roomID int64) (*replaceWindow.Request, error) {
	start, err := types.NewTimeStringFromString(r.DailyStart)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(r.DailyEnd)
	if err != nil {
		return nil, err
	}

	return &replaceWindow.Request{
		RoomID:     roomID,
		Weekdays:   r.Weekdays,
		DailyStart: start,
		DailyEnd:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *replaceWindow.Response) *ReplaceWindowResponse {
	weekdays := make([]string, len(resp.Window.Weekdays))
	for i, day := range resp.Window.Weekdays {
		weekdays[i] = string(day)
	}

	return &ReplaceWindowResponse{
		RoomID:     resp.RoomID,
		Weekdays:   weekdays,
		DailyStart: resp.Window.DailyStart.String(),
		DailyEnd:   resp.Window.DailyEnd.String(),
		Purged:     resp.Purged,
	}
}
