package handlers

import (
	"fmt"
	"time"
)

// HolidayRequest тело запроса на создание или обновление отпуска
type HolidayRequest struct {
	HolidayLabel   string `json:"holidayLabel" validate:"notblank,max=255"`
	EmployeeID     string `json:"employeeId" validate:"required,employee_id"`
	StartOfHoliday string `json:"startOfHoliday" validate:"required"`
	EndOfHoliday   string `json:"endOfHoliday" validate:"required"`
	Status         string `json:"status" validate:"required,holiday_status"`
}

// Interval разбирает начало и окончание отпуска
func (r *HolidayRequest) Interval() (start, end time.Time, err error) {
	start, err = ParseTimestamp(r.StartOfHoliday)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startOfHoliday: %w", err)
	}
	end, err = ParseTimestamp(r.EndOfHoliday)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endOfHoliday: %w", err)
	}
	return start, end, nil
}

// HolidayResponse тело ответа с данными отпуска
type HolidayResponse struct {
	HolidayID      string `json:"holidayId"`
	HolidayLabel   string `json:"holidayLabel"`
	EmployeeID     string `json:"employeeId"`
	StartOfHoliday string `json:"startOfHoliday"`
	EndOfHoliday   string `json:"endOfHoliday"`
	Status         string `json:"status"`
}
