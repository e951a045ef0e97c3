package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/pkg/workdays"
)

// HolidayStatus represents the lifecycle tag of a holiday
// Движок правил статус не интерпретирует, он только сохраняется
type HolidayStatus string

const (
	StatusDraft     HolidayStatus = "draft"
	StatusRequested HolidayStatus = "requested"
	StatusScheduled HolidayStatus = "scheduled"
	StatusArchived  HolidayStatus = "archived"
)

// Holiday represents a time-off booking of a crew member
type Holiday struct {
	ID         uuid.UUID // uuid.Nil для еще не сохраненного отпуска
	Label      string
	EmployeeID string
	Start      time.Time
	End        time.Time
	Status     HolidayStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew returns true if the holiday has not been persisted yet
func (h *Holiday) IsNew() bool {
	return h.ID == uuid.Nil
}

// StartDate возвращает календарную дату начала (UTC), используется только для подсчета рабочих дней
func (h *Holiday) StartDate() time.Time {
	return workdays.DateOf(h.Start)
}

// EndDate возвращает календарную дату окончания (UTC)
func (h *Holiday) EndDate() time.Time {
	return workdays.DateOf(h.End)
}

// Overlaps проверяет пересечение полуинтервалов [Start, End) по полным меткам времени
// Отпуск, заканчивающийся ровно в момент начала другого, пересечением не считается
func (h *Holiday) Overlaps(start, end time.Time) bool {
	return h.Start.Before(end) && start.Before(h.End)
}

// WithChanges возвращает копию отпуска с замененными изменяемыми полями
// Идентификатор и время создания сохраняются, исходный объект не меняется
func (h *Holiday) WithChanges(changes *Holiday) *Holiday {
	next := *h
	next.Label = changes.Label
	next.EmployeeID = changes.EmployeeID
	next.Start = changes.Start
	next.End = changes.End
	next.Status = changes.Status
	return &next
}

// Statuses список всех допустимых статусов
var Statuses = []HolidayStatus{
	StatusDraft,
	StatusRequested,
	StatusScheduled,
	StatusArchived,
}

// IsValid проверяет, что статус входит в список допустимых
func (s HolidayStatus) IsValid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
