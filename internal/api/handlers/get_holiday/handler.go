package get_holiday

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/service/holidays"
)

const (
	msgInvalidHolidayID = "некорректный ID отпуска"
	msgNotFound         = "отпуск не найден"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holidayID, err := handlers.PathUUID(r, "holidayId")
	if err != nil {
		h.logger.Warn("GET /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	holiday, err := h.service.GetByID(r.Context(), holidayID)
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrHolidayNotFound):
			h.logger.Warn("GET /holidays/{id} - Holiday not found: holiday_id=%s", holidayID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /holidays/{id} - Failed to get holiday: holiday_id=%s, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, holiday)
}
