package create_employee

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HolidayService/internal/service/employees"
	"github.com/m04kA/SMC-HolidayService/internal/service/employees/models"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type stubService struct {
	called bool
	err    error
}

func (s *stubService) Create(_ context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return &models.EmployeeResponse{EmployeeID: req.EmployeeID, Name: req.Name}, nil
}

func post(svc *stubService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCalled bool
	}{
		{name: "created", body: `{"employeeId":"klm000001","name":"Anna"}`, wantStatus: http.StatusCreated, wantCalled: true},
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad employee id", body: `{"employeeId":"abc","name":"Anna"}`, wantStatus: http.StatusBadRequest},
		{name: "blank name", body: `{"employeeId":"klm000001","name":"   "}`, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"employeeId":"klm000001","name":"Anna"}`, err: employees.ErrEmployeeAlreadyExists,
			wantStatus: http.StatusConflict, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}

			rec := post(svc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, svc.called)
		})
	}
}
