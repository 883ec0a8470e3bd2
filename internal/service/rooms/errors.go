package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrLoginTaken возвращается, когда логин переговорной уже занят
	ErrLoginTaken = errors.New("room login already taken")

	// ErrInvalidWindow возвращается, когда начало дневного окна
	// не раньше его конца
	ErrInvalidWindow = errors.New("daily start must precede daily end")

	// ErrAccessDenied возвращается, когда у принципала нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)
