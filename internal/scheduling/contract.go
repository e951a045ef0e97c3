package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// HolidayReader источник существующих отпусков для проверки правил
type HolidayReader interface {
	// FindOverlapping возвращает отпуска всех сотрудников, пересекающиеся с [start, end)
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error)
	// GetByEmployeeID возвращает отпуска сотрудника, отсортированные по началу
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
