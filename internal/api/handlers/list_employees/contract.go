package list_employees

import (
	"context"

	"github.com/m04kA/SMC-HolidayService/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context) ([]*models.EmployeeResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
