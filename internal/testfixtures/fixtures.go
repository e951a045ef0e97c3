package testfixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// Date возвращает полночь указанной даты в UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At возвращает момент времени в UTC
func At(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// HolidayOption изменяет собираемый отпуск
type HolidayOption func(h *domain.Holiday)

// NewHoliday собирает сохраненный отпуск сотрудника klm000001 со статусом scheduled
func NewHoliday(start, end time.Time, opts ...HolidayOption) *domain.Holiday {
	h := &domain.Holiday{
		ID:         uuid.New(),
		Label:      "Summer holiday",
		EmployeeID: "klm000001",
		Start:      start,
		End:        end,
		Status:     domain.StatusScheduled,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Candidate собирает еще не сохраненный отпуск
func Candidate(start, end time.Time, opts ...HolidayOption) *domain.Holiday {
	h := NewHoliday(start, end, opts...)
	h.ID = uuid.Nil
	return h
}

// WithEmployee задает сотрудника
func WithEmployee(employeeID string) HolidayOption {
	return func(h *domain.Holiday) {
		h.EmployeeID = employeeID
	}
}

// WithID задает идентификатор
func WithID(id uuid.UUID) HolidayOption {
	return func(h *domain.Holiday) {
		h.ID = id
	}
}

// WithLabel задает название
func WithLabel(label string) HolidayOption {
	return func(h *domain.Holiday) {
		h.Label = label
	}
}

// WithStatus задает статус
func WithStatus(status domain.HolidayStatus) HolidayOption {
	return func(h *domain.Holiday) {
		h.Status = status
	}
}
