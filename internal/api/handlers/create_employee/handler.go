package create_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/service/employees"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgAlreadyExists = "сотрудник с таким ID уже существует"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /employees - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), req.toServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrEmployeeAlreadyExists):
			h.logger.Warn("POST /employees - Employee already exists: employee_id=%s", req.EmployeeID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, employees.ErrInvalidInput):
			h.logger.Warn("POST /employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee created successfully: employee_id=%s", result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
