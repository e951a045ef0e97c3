package create_holiday

import (
	"context"

	createHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/create_holiday"
)

type CreateHolidayUseCase interface {
	Execute(ctx context.Context, req *createHoliday.Request) (*createHoliday.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
