package list_holidays

import (
	"context"

	"github.com/m04kA/SMC-HolidayService/internal/service/holidays/models"
)

type HolidayService interface {
	List(ctx context.Context, employeeID *string) ([]*models.HolidayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
