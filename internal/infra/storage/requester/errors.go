package requester

import "errors"

var (
	// ErrRequesterNotFound возвращается, когда пользователь не найден
	ErrRequesterNotFound = errors.New("requester.repository: requester not found")

	// ErrEmailTaken возвращается при конфликте уникального email
	ErrEmailTaken = errors.New("requester.repository: email already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("requester.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("requester.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("requester.repository: failed to scan row")
)
