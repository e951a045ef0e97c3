package create_holiday

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	createHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/create_holiday"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректный формат даты, ожидается RFC 3339 со смещением"
)

type Handler struct {
	useCase CreateHolidayUseCase
	logger  Logger
}

func NewHandler(useCase CreateHolidayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("POST /holidays - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := ToUseCaseRequest(&req)
	if err != nil {
		h.logger.Warn("POST /holidays - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			h.logger.Warn("POST /holidays - Rejected: employee_id=%s, reason=%s", req.EmployeeID, violation.Kind)
			handlers.RespondViolation(w, violation)
			return
		}

		switch {
		case errors.Is(err, createHoliday.ErrInvalidInput):
			h.logger.Warn("POST /holidays - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holidays - Failed to create holiday: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holidays - Holiday created successfully: holiday_id=%s, employee_id=%s",
		result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
