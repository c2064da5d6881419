package get_day_timetable

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSettingsNotConfigured возвращается, когда настройки центра еще не заданы
	ErrSettingsNotConfigured = errors.New("operating settings are not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
