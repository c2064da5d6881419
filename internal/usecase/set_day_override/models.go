package set_day_override

import "github.com/m04kA/SMC-TankScheduler/internal/domain"

// Request модель запроса на установку исключения для даты
type Request struct {
	AdminID        int64
	Date           domain.Date
	Status         string // bookable | closed
	OpenTime       string // HH:MM, обязательно для bookable
	CloseTime      string // HH:MM, обязательно для bookable; раньше открытия - работа через полночь
	SessionsToSell *int   // nil - посчитать по окну и готовым бакам
}

// Response модель ответа с сохраненным исключением
type Response struct {
	Override         domain.DayOverride
	SessionsComputed bool // лимит посчитан автоматически
}
