package cancel_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JBarber-BookingService/internal/service/appointments"
	"github.com/m04kA/JBarber-BookingService/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error

	gotID  int64
	gotReq *models.CancelAppointmentRequest
}

func (f *fakeService) Cancel(_ context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	f.gotID = id
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doCancel(t *testing.T, svc AppointmentsService, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/appointments/{id}/cancel", h.Handle).Methods(http.MethodPatch)

	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+id+"/cancel", reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Cancel(t *testing.T) {
	reason := "cliente no llegó"
	svc := &fakeService{resp: &models.AppointmentResponse{
		ID:                 7,
		ClientName:         "Ana García",
		Status:             "cancelled",
		CancellationReason: &reason,
	}}

	rec := doCancel(t, svc, "7", `{"reason":"cliente no llegó"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)
	require.NotNil(t, svc.gotReq)
	require.NotNil(t, svc.gotReq.Reason)
	assert.Equal(t, "cliente no llegó", *svc.gotReq.Reason)

	// В ответе полная обновлённая запись, а не только статус
	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "cliente no llegó", *resp.CancellationReason)
}

func TestHandler_Cancel_EmptyBody(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentResponse{ID: 7, Status: "cancelled"}}

	rec := doCancel(t, svc, "7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Reason)
}

func TestHandler_Cancel_NotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}

	rec := doCancel(t, svc, "404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgAppointmentNotFound)
}

func TestHandler_Cancel_InvalidID(t *testing.T) {
	rec := doCancel(t, &fakeService{}, "abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doCancel(t, &fakeService{}, "0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Cancel_ReasonTooLong(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidInput}

	rec := doCancel(t, svc, "7", `{"reason":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgReasonTooLong)
}
