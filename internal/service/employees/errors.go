package employees

import "errors"

var (
	// ErrEmployeeAlreadyExists возвращается при повторном создании сотрудника
	ErrEmployeeAlreadyExists = errors.New("employees: employee already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("employees: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("employees: internal error")
)
