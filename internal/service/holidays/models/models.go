package models

import (
	"time"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// HolidayResponse ответ с данными отпуска
type HolidayResponse struct {
	HolidayID      string `json:"holidayId"`
	HolidayLabel   string `json:"holidayLabel"`
	EmployeeID     string `json:"employeeId"`
	StartOfHoliday string `json:"startOfHoliday"` // RFC 3339 со смещением
	EndOfHoliday   string `json:"endOfHoliday"`
	Status         string `json:"status"`
}

// FromDomainHoliday конвертирует доменную модель в ответ
func FromDomainHoliday(h *domain.Holiday) *HolidayResponse {
	return &HolidayResponse{
		HolidayID:      h.ID.String(),
		HolidayLabel:   h.Label,
		EmployeeID:     h.EmployeeID,
		StartOfHoliday: h.Start.Format(time.RFC3339),
		EndOfHoliday:   h.End.Format(time.RFC3339),
		Status:         string(h.Status),
	}
}

// FromDomainHolidayList конвертирует список отпусков
// Пустой список сериализуется как [], а не null
func FromDomainHolidayList(holidays []*domain.Holiday) []*HolidayResponse {
	result := make([]*HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, FromDomainHoliday(h))
	}
	return result
}
