package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/JBarber-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/JBarber-BookingService/internal/service/appointments/models"
)

type fakeRepo struct {
	appointments []*domain.Appointment

	cancelledID     int64
	cancelledReason string
	deletedID       int64

	listErr   error
	cancelErr error
	deleteErr error
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.appointments, nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	r.cancelledID = id
	r.cancelledReason = reason
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func cancelledFixture(id int64, reason string) *domain.Appointment {
	return &domain.Appointment{
		ID:                 id,
		ClientName:         "Ana García",
		Phone:              "50211112222",
		Status:             domain.StatusCancelled,
		CancellationReason: &reason,
	}
}

func TestService_Cancel_DefaultReason(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		cancelledFixture(7, domain.DefaultCancellationReason),
		cancelledFixture(8, domain.DefaultCancellationReason),
	}}
	svc := NewService(repo, nopLogger{})

	// nil запрос и пустая причина заменяются плейсхолдером
	resp, err := svc.Cancel(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, domain.DefaultCancellationReason, repo.cancelledReason)
	require.NotNil(t, resp)
	assert.Equal(t, int64(7), resp.ID)

	empty := "   "
	_, err = svc.Cancel(context.Background(), 8, &models.CancelAppointmentRequest{Reason: &empty})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCancellationReason, repo.cancelledReason)
}

func TestService_Cancel_ExplicitReason(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		cancelledFixture(7, "cliente no llegó"),
	}}
	svc := NewService(repo, nopLogger{})

	reason := "  cliente no llegó  "
	resp, err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, "cliente no llegó", repo.cancelledReason)

	// Возвращается обновлённая запись целиком
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "cliente no llegó", *resp.CancellationReason)
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	long := strings.Repeat("x", domain.MaxCancellationReasonLength+1)
	_, err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{Reason: &long})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.cancelledID)
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &fakeRepo{cancelErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 404, nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), repo.deletedID)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_ListAll(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 1, Status: domain.StatusConfirmed},
		{ID: 2, Status: domain.StatusCancelled},
	}}
	svc := NewService(repo, nopLogger{})

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_ListAll_RepoError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
