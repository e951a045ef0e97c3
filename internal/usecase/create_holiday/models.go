package create_holiday

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// Request модель запроса на создание отпуска
type Request struct {
	Label      string
	EmployeeID string
	Start      time.Time
	End        time.Time
	Status     domain.HolidayStatus
}

// Response модель ответа с созданным отпуском
type Response struct {
	ID         uuid.UUID
	Label      string
	EmployeeID string
	Start      time.Time
	End        time.Time
	Status     domain.HolidayStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Request) toDomain() *domain.Holiday {
	return &domain.Holiday{
		Label:      r.Label,
		EmployeeID: r.EmployeeID,
		Start:      r.Start,
		End:        r.End,
		Status:     r.Status,
	}
}

func fromDomain(h *domain.Holiday) *Response {
	return &Response{
		ID:         h.ID,
		Label:      h.Label,
		EmployeeID: h.EmployeeID,
		Start:      h.Start,
		End:        h.End,
		Status:     h.Status,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}
