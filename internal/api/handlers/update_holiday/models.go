package update_holiday

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/domain"
	updateHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/update_holiday"
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func ToUseCaseRequest(id uuid.UUID, r *handlers.HolidayRequest) (*updateHoliday.Request, error) {
	start, end, err := r.Interval()
	if err != nil {
		return nil, err
	}

	return &updateHoliday.Request{
		ID:         id,
		Label:      r.HolidayLabel,
		EmployeeID: r.EmployeeID,
		Start:      start,
		End:        end,
		Status:     domain.HolidayStatus(r.Status),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateHoliday.Response) *handlers.HolidayResponse {
	return &handlers.HolidayResponse{
		HolidayID:      resp.ID.String(),
		HolidayLabel:   resp.Label,
		EmployeeID:     resp.EmployeeID,
		StartOfHoliday: resp.Start.Format(time.RFC3339),
		EndOfHoliday:   resp.End.Format(time.RFC3339),
		Status:         string(resp.Status),
	}
}
