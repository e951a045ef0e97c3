package events

import (
	"time"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// EventType тип события изменения отпуска
type EventType string

const (
	HolidayCreated EventType = "holiday.created"
	HolidayUpdated EventType = "holiday.updated"
	HolidayDeleted EventType = "holiday.deleted"
)

// HolidayPayload данные отпуска в событии
type HolidayPayload struct {
	HolidayID      string `json:"holidayId"`
	HolidayLabel   string `json:"holidayLabel"`
	EmployeeID     string `json:"employeeId"`
	StartOfHoliday string `json:"startOfHoliday"`
	EndOfHoliday   string `json:"endOfHoliday"`
	Status         string `json:"status"`
}

// HolidayEvent событие изменения отпуска
type HolidayEvent struct {
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Holiday    HolidayPayload `json:"holiday"`
}

// NewHolidayEvent собирает событие по отпуску
func NewHolidayEvent(eventType EventType, h *domain.Holiday, occurredAt time.Time) HolidayEvent {
	return HolidayEvent{
		Type:       eventType,
		OccurredAt: occurredAt.UTC(),
		Holiday: HolidayPayload{
			HolidayID:      h.ID.String(),
			HolidayLabel:   h.Label,
			EmployeeID:     h.EmployeeID,
			StartOfHoliday: h.Start.Format(time.RFC3339),
			EndOfHoliday:   h.End.Format(time.RFC3339),
			Status:         string(h.Status),
		},
	}
}
