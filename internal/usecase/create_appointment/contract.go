package create_appointment

import (
	"context"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// WhatsAppClient интерфейс исходящей связи с барбером.
// BuildLink детерминирован и ошибок не возвращает; Send работает best-effort.
type WhatsAppClient interface {
	BuildLink(clientName string, date types.DateString, slot types.SlotLabel, phone string) string
	Send(ctx context.Context, clientName string, date types.DateString, slot types.SlotLabel, phone string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
