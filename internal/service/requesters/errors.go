package requesters

import "errors"

var (
	// ErrRequesterNotFound возвращается, когда пользователь не найден
	ErrRequesterNotFound = errors.New("requester not found")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("requester email already taken")

	// ErrAccessDenied возвращается, когда у принципала нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("requesters service: internal error")
)
