package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JBarber-BookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL: нарушение уникального индекса и
// serialization_failure проигравшей SERIALIZABLE транзакции
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
)

var selectColumns = []string{
	"id",
	"client_name",
	"phone",
	"appointment_date",
	"start_time",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
}

// Repository репозиторий для работы с записями барбершопа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Частичный уникальный индекс по (appointment_date, start_time) WHERE status = 'confirmed'
// является последней линией защиты от двойного бронирования: даже если две
// конкурирующие транзакции прошли проверку занятости, вторая вставка упадёт
// с unique violation и будет возвращена как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_name",
			"phone",
			"appointment_date",
			"start_time",
			"status",
		).
		Values(
			appt.ClientName,
			appt.Phone,
			appt.Date,
			appt.StartTime,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		// Оба кода означают проигранную гонку за слот: уникальный индекс
		// или serialization_failure конкурирующей SERIALIZABLE транзакции
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == uniqueViolation || pqErr.Code == serializationFailure) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListWithFilter получает записи по фильтру (дата, слот, статус, все опциональны).
// Сортировка по дате возрастанием, внутри дня порядок определяет view-model
// (метки слотов текстовые, БД их хронологически не упорядочит).
//
// Если вызов идёт внутри транзакции и фильтр указывает конкретный слот
// (Date + StartTime), строки блокируются FOR UPDATE: это путь проверки
// занятости при создании записи.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		OrderBy("appointment_date ASC, created_at ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.StartTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.StartTime})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil && filter.StartTime != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Cancel отменяет запись: статус cancelled, причина и время отмены.
// Повторная отмена уже отменённой записи допустима: статус и причина
// просто перезаписываются.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись (физическое удаление, использовать осторожно).
// Рекомендуется использовать Cancel вместо физического удаления для сохранения истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в доменную модель
func scanAppointment(row scanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var reason sql.NullString
	var cancelledAt, createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.Phone,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&reason,
		&cancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		appt.CancellationReason = &reason.String
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		appt.CancelledAt = &t
	}
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
