package update_holiday

import (
	"context"

	updateHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/update_holiday"
)

type UpdateHolidayUseCase interface {
	Execute(ctx context.Context, req *updateHoliday.Request) (*updateHoliday.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
