package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	"github.com/m04kA/SMC-HolidayService/pkg/workdays"
)

// CheckDateOrder проверяет, что окончание строго позже начала
func CheckDateOrder(start, end time.Time) *Violation {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return NewViolation(KindInvalidDateOrder)
	}
	return nil
}

// CheckLeadTime проверяет, что между сегодняшней датой и датой начала
// не меньше MinLeadWorkingDays рабочих дней.
// Одна и та же арифметика используется для планирования и для отмены,
// kind определяет, какое нарушение вернуть
func CheckLeadTime(now, start time.Time, kind ViolationKind) *Violation {
	if workdays.Between(now, start) < domain.MinLeadWorkingDays {
		return NewViolation(kind)
	}
	return nil
}

// CheckOverlap проверяет пересечение кандидата с отпусками всех сотрудников
// Отпуск с идентификатором exclude (обновляемый) не сравнивается сам с собой
func CheckOverlap(start, end time.Time, existing []*domain.Holiday, exclude uuid.UUID) *Violation {
	for _, h := range existing {
		if isExcluded(h, exclude) {
			continue
		}
		if h.Overlaps(start, end) {
			return NewViolation(KindOverlap)
		}
	}
	return nil
}

// CheckGap проверяет перерыв между кандидатом и остальными отпусками того же сотрудника
// Для каждого отпуска проверяются обе стороны; цикл останавливается только на нарушении
func CheckGap(start, end time.Time, sameEmployee []*domain.Holiday, exclude uuid.UUID) *Violation {
	startDate := workdays.DateOf(start)
	endDate := workdays.DateOf(end)

	for _, other := range sameEmployee {
		if isExcluded(other, exclude) {
			continue
		}

		// Дублирует глобальную проверку, но с собственным типом нарушения
		if other.Overlaps(start, end) {
			return NewViolation(KindSameEmployeeOverlap)
		}

		otherStart := other.StartDate()
		otherEnd := other.EndDate()

		// Другой отпуск заканчивается до начала кандидата
		if !otherEnd.After(startDate) {
			if workdays.Between(otherEnd, startDate) < domain.MinGapWorkingDays {
				return NewViolation(KindInsufficientGap)
			}
		}

		// Кандидат заканчивается до начала другого отпуска
		if !endDate.After(otherStart) {
			if workdays.Between(endDate, otherStart) < domain.MinGapWorkingDays {
				return NewViolation(KindInsufficientGap)
			}
		}
	}
	return nil
}

func isExcluded(h *domain.Holiday, exclude uuid.UUID) bool {
	return exclude != uuid.Nil && h.ID == exclude
}
