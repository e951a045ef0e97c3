package list_holidays

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/service/holidays"
)

const msgInvalidEmployeeID = "некорректный employeeId, ожидается формат klm000000"

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

// Handle GET /api/holidays?employeeId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if r.URL.Query().Has("employeeId") {
		value := r.URL.Query().Get("employeeId")
		employeeID = &value
	}

	result, err := h.service.List(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrInvalidInput):
			h.logger.Warn("GET /holidays - Invalid employee ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		default:
			h.logger.Error("GET /holidays - Failed to list holidays: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
