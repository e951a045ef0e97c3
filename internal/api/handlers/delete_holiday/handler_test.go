package delete_holiday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/api/handlers"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	deleteHoliday "github.com/m04kA/SMC-HolidayService/internal/usecase/delete_holiday"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type stubUseCase struct {
	got uuid.UUID
	err error
}

func (s *stubUseCase) Execute(_ context.Context, id uuid.UUID) error {
	s.got = id
	return s.err
}

func serve(uc *stubUseCase, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/holidays/{holidayId}", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/holidays/"+id, nil))
	return rec
}

func TestHandle_NoContent(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{}

	rec := serve(uc, id.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, id, uc.got)
}

func TestHandle_CancellationNotice(t *testing.T) {
	rec := serve(&stubUseCase{err: scheduling.NewViolation(scheduling.KindCancellationNotice)}, uuid.NewString())

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancellation_notice", body.Reason)
}

func TestHandle_NotFoundAndBadID(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&stubUseCase{err: deleteHoliday.ErrHolidayNotFound}, uuid.NewString()).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "not-a-uuid").Code)
}
