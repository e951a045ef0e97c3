package list_holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/service/holidays"
	"github.com/m04kA/SMC-HolidayService/internal/service/holidays/models"
	tf "github.com/m04kA/SMC-HolidayService/internal/testfixtures"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type stubService struct {
	got    *string
	called bool
	err    error
}

func (s *stubService) List(_ context.Context, employeeID *string) ([]*models.HolidayResponse, error) {
	s.called = true
	s.got = employeeID
	if s.err != nil {
		return nil, s.err
	}
	return []*models.HolidayResponse{}, nil
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, "/api/holidays")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Nil(t, svc.got)

	svc = &stubService{}
	serve(svc, "/api/holidays?employeeId=klm000001")
	if assert.NotNil(t, svc.got) {
		assert.Equal(t, "klm000001", *svc.got)
	}
}

func TestHandle_InvalidEmployee(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: employeeId", holidays.ErrInvalidInput)}

	rec := serve(svc, "/api/holidays?employeeId=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BlankEmployeeIDListsAll(t *testing.T) {
	first := tf.NewHoliday(tf.At(2025, 10, 27, 9), tf.At(2025, 10, 29, 17))
	second := tf.NewHoliday(tf.At(2025, 11, 10, 9), tf.At(2025, 11, 12, 17), tf.WithEmployee("klm000002"))
	svc := holidays.NewService(tf.NewHolidayStore(first, second), logger.NewNop())

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/holidays?employeeId=", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.HolidayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}
