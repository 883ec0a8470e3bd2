package submit_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена или выключена
	ErrRoomNotFound = errors.New("submit_reservation: room not found")

	// ErrDayNotAvailable возвращается, когда день недели не входит
	// в окно доступности переговорной
	ErrDayNotAvailable = errors.New("submit_reservation: day is not available for this room")

	// ErrTimeOutsideWindow возвращается, когда интервал не помещается
	// в дневное окно доступности или начало не раньше конца
	ErrTimeOutsideWindow = errors.New("submit_reservation: time is outside the availability window")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующим
	// бронированием в статусе pending или accepted
	ErrSlotConflict = errors.New("submit_reservation: slot conflicts with an existing reservation")

	// ErrContention возвращается при конфликте сериализации конкурентных
	// submit. В отличие от ErrSlotConflict повтор того же слота может пройти.
	ErrContention = errors.New("submit_reservation: transaction contention, retry may succeed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
