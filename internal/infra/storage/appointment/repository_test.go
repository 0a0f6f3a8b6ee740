package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/ptr"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func appointmentRows(t time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "client_name", "phone", "appointment_date", "start_time",
		"status", "cancellation_reason", "cancelled_at", "created_at",
	}).AddRow(
		int64(1), "Ana García", "50211112222", "2024-05-01", "09:00 AM",
		"confirmed", nil, nil, t,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO appointments .+ RETURNING id, created_at`).
		WithArgs("Ana García", "50211112222", "2024-05-01", "09:00 AM", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		ClientName: "Ana García",
		Phone:      "50211112222",
		Date:       types.DateString("2024-05-01"),
		StartTime:  types.SlotLabel("09:00 AM"),
		Status:     domain.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "appointments_slot_confirmed_uniq"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ClientName: "Pedro",
		Phone:      "50233334444",
		Date:       types.DateString("2024-05-01"),
		StartTime:  types.SlotLabel("09:00 AM"),
		Status:     domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Проигравшая SERIALIZABLE транзакция падает с 40001: для вызывающего
	// это та же проигранная гонка за слот, что и нарушение уникального индекса
	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access due to read/write dependencies"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ClientName: "Pedro",
		Phone:      "50233334444",
		Date:       types.DateString("2024-05-01"),
		StartTime:  types.SlotLabel("09:00 AM"),
		Status:     domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(appointmentRows(now))

	appt, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Ana García", appt.ClientName)
	assert.Equal(t, types.DateString("2024-05-01"), appt.Date)
	assert.Equal(t, types.SlotLabel("09:00 AM"), appt.StartTime)
	assert.True(t, appt.IsConfirmed())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_name", "phone", "appointment_date", "start_time",
			"status", "cancellation_reason", "cancelled_at", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListWithFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE appointment_date = \$1 AND status = \$2 ORDER BY appointment_date ASC, created_at ASC`).
		WithArgs("2024-05-01", "confirmed").
		WillReturnRows(appointmentRows(time.Now()))

	date := types.DateString("2024-05-01")
	list, err := repo.ListWithFilter(context.Background(), domain.AppointmentsFilter{
		Date:   &date,
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE appointments SET status = \$1, cancellation_reason = \$2, cancelled_at = NOW\(\) WHERE id = \$3`).
		WithArgs("cancelled", "cliente no llegó", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Cancel(context.Background(), 1, "cliente no llegó"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE appointments`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 404, "reason")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM appointments`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
