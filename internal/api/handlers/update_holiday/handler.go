package update_holiday

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	updateHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/update_holiday"
)

const (
	msgInvalidHolidayID   = "некорректный ID отпуска"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректный формат даты, ожидается RFC 3339 со смещением"
	msgNotFound           = "отпуск не найден"
)

type Handler struct {
	useCase UpdateHolidayUseCase
	logger  Logger
}

func NewHandler(useCase UpdateHolidayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holidayID, err := handlers.PathUUID(r, "holidayId")
	if err != nil {
		h.logger.Warn("PUT /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	var req handlers.HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /holidays/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("PUT /holidays/{id} - Validation failed: holiday_id=%s, %v", holidayID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := ToUseCaseRequest(holidayID, &req)
	if err != nil {
		h.logger.Warn("PUT /holidays/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			h.logger.Warn("PUT /holidays/{id} - Rejected: holiday_id=%s, reason=%s", holidayID, violation.Kind)
			handlers.RespondViolation(w, violation)
			return
		}

		switch {
		case errors.Is(err, updateHoliday.ErrHolidayNotFound):
			h.logger.Warn("PUT /holidays/{id} - Holiday not found: holiday_id=%s", holidayID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateHoliday.ErrInvalidInput):
			h.logger.Warn("PUT /holidays/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /holidays/{id} - Failed to update holiday: holiday_id=%s, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /holidays/{id} - Holiday updated successfully: holiday_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
