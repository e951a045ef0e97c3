package delete_holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда удаляемый отпуск не найден
	ErrHolidayNotFound = errors.New("delete_holiday: holiday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_holiday: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_holiday: internal error")
)
