package replace_window

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("replace_window: room not found")

	// ErrInvalidWindow возвращается, когда начало дневного окна
	// не раньше его конца
	ErrInvalidWindow = errors.New("replace_window: daily start must precede daily end")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("replace_window: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("replace_window: internal error")
)
