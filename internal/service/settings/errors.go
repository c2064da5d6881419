package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки еще не заданы
	ErrSettingsNotFound = errors.New("operating settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
