package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// Validator проверяет бизнес-правила планирования отпусков
// Состояния не хранит: каждое решение принимается по снимку отпусков,
// прочитанному в начале проверки. Порядок проверок фиксирован:
// порядок дат -> срок планирования -> глобальное пересечение -> перерыв сотрудника
type Validator struct {
	holidays     HolidayReader
	timeProvider TimeProvider
}

// NewValidator создает новый экземпляр валидатора
func NewValidator(holidays HolidayReader, timeProvider TimeProvider) *Validator {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Validator{
		holidays:     holidays,
		timeProvider: timeProvider,
	}
}

// ValidateCreate проверяет новый отпуск
// Возвращает (nil, nil), если отпуск можно сохранить
func (v *Validator) ValidateCreate(ctx context.Context, candidate *domain.Holiday) (*Violation, error) {
	return v.validateSchedule(ctx, candidate, uuid.Nil)
}

// ValidateUpdate проверяет следующее состояние существующего отпуска
// Отпуск с идентификатором id исключается из проверок пересечения и перерыва
func (v *Validator) ValidateUpdate(ctx context.Context, id uuid.UUID, proposed *domain.Holiday) (*Violation, error) {
	return v.validateSchedule(ctx, proposed, id)
}

// ValidateDelete проверяет срок отмены по текущей дате начала отпуска
func (v *Validator) ValidateDelete(existing *domain.Holiday) *Violation {
	return CheckLeadTime(v.timeProvider.Now(), existing.Start, KindCancellationNotice)
}

func (v *Validator) validateSchedule(ctx context.Context, h *domain.Holiday, exclude uuid.UUID) (*Violation, error) {
	if violation := CheckDateOrder(h.Start, h.End); violation != nil {
		return violation, nil
	}

	if violation := CheckLeadTime(v.timeProvider.Now(), h.Start, KindLeadTime); violation != nil {
		return violation, nil
	}

	overlapping, err := v.holidays.FindOverlapping(ctx, h.Start, h.End)
	if err != nil {
		return nil, fmt.Errorf("find overlapping holidays: %w", err)
	}
	if violation := CheckOverlap(h.Start, h.End, overlapping, exclude); violation != nil {
		return violation, nil
	}

	sameEmployee, err := v.holidays.GetByEmployeeID(ctx, h.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("get employee holidays: %w", err)
	}
	if violation := CheckGap(h.Start, h.End, sameEmployee, exclude); violation != nil {
		return violation, nil
	}

	return nil, nil
}

