package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда отпуск не найден
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	// ErrOverlapConstraint возвращается, когда запись нарушает ограничение исключения по интервалу
	ErrOverlapConstraint = errors.New("holiday.repository: holiday overlaps an existing one")

	// ErrNotInTransaction возвращается при попытке взять блокировку вне транзакции
	ErrNotInTransaction = errors.New("holiday.repository: operation requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("holiday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("holiday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("holiday.repository: failed to scan row")
)
