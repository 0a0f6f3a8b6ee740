package cancel_appointment

import (
	"context"

	"github.com/m04kA/JBarber-BookingService/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса административных операций
type AppointmentsService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
