package list_employees

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HolidayService/internal/service/employees/models"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type stubService struct {
	result []*models.EmployeeResponse
	err    error
}

func (s *stubService) List(context.Context) ([]*models.EmployeeResponse, error) {
	return s.result, s.err
}

func TestHandle(t *testing.T) {
	svc := &stubService{result: []*models.EmployeeResponse{{EmployeeID: "klm000001", Name: "Anna"}}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"employeeId":"klm000001","name":"Anna"}]`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&stubService{err: errors.New("db down")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
