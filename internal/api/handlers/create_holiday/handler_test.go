package create_holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	createHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/create_holiday"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type stubUseCase struct {
	got *createHoliday.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createHoliday.Request) (*createHoliday.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createHoliday.Response{
		ID:         uuid.MustParse("7f1b2c3d-0000-4000-8000-000000000001"),
		Label:      req.Label,
		EmployeeID: req.EmployeeID,
		Start:      req.Start,
		End:        req.End,
		Status:     req.Status,
	}, nil
}

const validBody = `{
	"holidayLabel": "Autumn break",
	"employeeId": "klm000001",
	"startOfHoliday": "2025-11-03T09:00:00+01:00",
	"endOfHoliday": "2025-11-07T17:00:00+01:00",
	"status": "requested"
}`

func serve(uc *stubUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/holidays", strings.NewReader(body))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp handlers.HolidayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7f1b2c3d-0000-4000-8000-000000000001", resp.HolidayID)
	assert.Equal(t, "2025-11-03T09:00:00+01:00", resp.StartOfHoliday)
	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, "klm000001", uc.got.EmployeeID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad employee id", body: strings.Replace(validBody, "klm000001", "klm1", 1), wantStatus: http.StatusBadRequest},
		{name: "timestamp without offset", body: strings.Replace(validBody, "2025-11-03T09:00:00+01:00", "2025-11-03T09:00:00", 1), wantStatus: http.StatusBadRequest},
		{name: "rule violation", body: validBody, err: scheduling.NewViolation(scheduling.KindLeadTime), wantStatus: http.StatusConflict, wantReason: "lead_time"},
		{name: "invalid input", body: validBody, err: fmt.Errorf("%w: label", createHoliday.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, err: fmt.Errorf("%w: db", createHoliday.ErrInternal), wantStatus: http.StatusInternalServerError},
		{name: "unexpected", body: validBody, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantReason, body.Reason)
		})
	}
}
