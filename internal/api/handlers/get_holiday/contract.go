package get_holiday

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/service/holidays/models"
)

type HolidayService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.HolidayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
