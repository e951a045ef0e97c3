package delete_holiday

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	deleteHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/delete_holiday"
)

const (
	msgInvalidHolidayID = "некорректный ID отпуска"
	msgNotFound         = "отпуск не найден"
)

type Handler struct {
	useCase DeleteHolidayUseCase
	logger  Logger
}

func NewHandler(useCase DeleteHolidayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holidayID, err := handlers.PathUUID(r, "holidayId")
	if err != nil {
		h.logger.Warn("DELETE /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	if err := h.useCase.Execute(r.Context(), holidayID); err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			h.logger.Warn("DELETE /holidays/{id} - Rejected: holiday_id=%s, reason=%s", holidayID, violation.Kind)
			handlers.RespondViolation(w, violation)
			return
		}

		switch {
		case errors.Is(err, deleteHoliday.ErrHolidayNotFound):
			h.logger.Warn("DELETE /holidays/{id} - Holiday not found: holiday_id=%s", holidayID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteHoliday.ErrInvalidInput):
			h.logger.Warn("DELETE /holidays/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHolidayID)

		default:
			h.logger.Error("DELETE /holidays/{id} - Failed to delete holiday: holiday_id=%s, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holidays/{id} - Holiday deleted successfully: holiday_id=%s", holidayID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
