package holidays

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// HolidayRepository интерфейс репозитория отпусков
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]*domain.Holiday, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*domain.Holiday, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
