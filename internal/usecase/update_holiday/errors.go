package update_holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда обновляемый отпуск не найден
	ErrHolidayNotFound = errors.New("update_holiday: holiday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_holiday: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_holiday: internal error")
)
