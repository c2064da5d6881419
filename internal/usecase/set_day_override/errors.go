package set_day_override

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSettingsNotConfigured возвращается, когда лимит сессий нельзя посчитать без настроек
	ErrSettingsNotConfigured = errors.New("operating settings are not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
