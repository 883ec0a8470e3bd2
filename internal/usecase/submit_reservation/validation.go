package submit_reservation

import (
	"fmt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.RequesterID != nil && *req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveWeekday нормализует имя дня недели из запроса.
// Пустое имя выводится из календарной даты.
func resolveWeekday(req *Request) (domain.Weekday, error) {
	if req.Weekday == "" {
		return domain.WeekdayOfDate(req.Date), nil
	}

	day, err := domain.NormalizeWeekday(req.Weekday)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return day, nil
}

// checkWindow проверяет кандидата против окна доступности переговорной:
// сначала принадлежность дня недели, затем вложенность интервала в
// дневное окно (это же покрывает start < end).
func checkWindow(window *domain.AvailabilityWindow, day domain.Weekday, req *Request) error {
	if !window.AllowsDay(day) {
		return fmt.Errorf("%w: %s", ErrDayNotAvailable, day)
	}

	if !window.Contains(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: [%s, %s) not within [%s, %s)",
			ErrTimeOutsideWindow, req.StartTime, req.EndTime, window.DailyStart, window.DailyEnd)
	}

	return nil
}

// checkOverlap проверяет кандидата против существующих бронирований
// по трехчленному правилу пересечения (domain.Overlaps).
func checkOverlap(req *Request, existing []*domain.Reservation) error {
	conflicting := domain.ConflictingReservationIDs(req.StartTime, req.EndTime, existing)
	if len(conflicting) > 0 {
		return fmt.Errorf("%w: reservation id(s) %v", ErrSlotConflict, conflicting)
	}
	return nil
}
