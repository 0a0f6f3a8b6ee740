package domain

import (
	"time"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a barbershop reservation: one client holding one
// slot (date + time label) of the daily catalogue.
type Appointment struct {
	ID         int64
	ClientName string
	Phone      string
	Date       types.DateString // "2025-10-15", ключ группировки и партиционирования
	StartTime  types.SlotLabel  // метка слота как она показывается клиенту ("09:00 AM")
	Status     AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// IsConfirmed returns true if the appointment occupies its slot.
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled.
// Отменённые записи не занимают слот, но сохраняются для истории.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date      *types.DateString  // Фильтр по дате (опционально)
	StartTime *types.SlotLabel   // Фильтр по слоту (опционально, имеет смысл вместе с Date)
	Status    *AppointmentStatus // Фильтр по статусу (опционально, если nil - все статусы)
}
