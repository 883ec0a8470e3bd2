package identity

import "errors"

var (
	// ErrUnauthenticated возвращается, когда токен отсутствует или просрочен
	ErrUnauthenticated = errors.New("identity client: unauthenticated")

	// ErrInvalidToken возвращается, когда токен не прошел проверку
	ErrInvalidToken = errors.New("identity client: invalid token")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
