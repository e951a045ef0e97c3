package delete_holiday

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
)

// HolidayRepository интерфейс репозитория отпусков
type HolidayRepository interface {
	LockSchedule(ctx context.Context) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Holiday, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Validator проверка срока отмены
type Validator interface {
	ValidateDelete(existing *domain.Holiday) *scheduling.Violation
}

// TransactionManager интерфейс для управления транзакциями
// Запись выполняется в READ COMMITTED под блокировкой расписания: после LockSchedule
// каждый запрос видит все отпуска, зафиксированные предыдущим владельцем блокировки
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий изменения отпусков
type EventPublisher interface {
	Publish(ctx context.Context, event events.HolidayEvent) error
}

// DecisionRecorder учет решений движка правил в метриках
type DecisionRecorder interface {
	RecordRuleDecision(operation, outcome string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
