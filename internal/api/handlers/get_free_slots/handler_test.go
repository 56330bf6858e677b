package get_free_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getFreeSlots "barber-scheduling-service/internal/usecase/get_free_slots"
)

type stubUseCase struct {
	resp *getFreeSlots.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(uc GetFreeSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/barbers/{id}/free-slots", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string) (*httptest.ResponseRecorder, SlotsResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleReturnsSlots(t *testing.T) {
	router := newRouter(&stubUseCase{resp: &getFreeSlots.Response{
		BarberID: 1,
		Date:     "2026-03-02",
		Slots:    []string{"09:00", "10:00"},
	}})

	rec, body := doRequest(t, router, "/api/v1/barbers/1/free-slots?date=2026-03-02")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), body.BarberID)
	assert.Equal(t, []string{"09:00", "10:00"}, body.Slots)
}

func TestHandleInvalidBarberID(t *testing.T) {
	router := newRouter(&stubUseCase{})

	rec, body := doRequest(t, router, "/api/v1/barbers/abc/free-slots?date=2026-03-02")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Тело со списком слотов присутствует даже на ошибке
	assert.NotNil(t, body.Slots)
	assert.Empty(t, body.Slots)
}

func TestHandleInvalidDate(t *testing.T) {
	router := newRouter(&stubUseCase{err: getFreeSlots.ErrInvalidDate})

	rec, body := doRequest(t, router, "/api/v1/barbers/1/free-slots?date=bad")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, body.Slots)
}

func TestHandleBarberNotFound(t *testing.T) {
	router := newRouter(&stubUseCase{err: getFreeSlots.ErrBarberNotFound})

	rec, body := doRequest(t, router, "/api/v1/barbers/99/free-slots?date=2026-03-02")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(99), body.BarberID)
	assert.Empty(t, body.Slots)
}

func TestHandleInternalError(t *testing.T) {
	router := newRouter(&stubUseCase{err: getFreeSlots.ErrInternal})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/1/free-slots?date=2026-03-02", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
