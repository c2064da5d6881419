package tanks

import "errors"

var (
	// ErrTankNotFound возвращается, когда бак не найден
	ErrTankNotFound = errors.New("tank not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
