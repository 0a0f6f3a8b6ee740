package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/ptr"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// UseCase use case получения расписания слотов на день.
// Занятость определяют только подтверждённые записи: отменённые слот не держат.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogue       *domain.SlotCatalogue
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, catalogue *domain.SlotCatalogue, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogue:       catalogue,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		uc.logger.Warn("GetDaySchedule: invalid date: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем подтверждённые записи на дату
	filter := domain.AppointmentsFilter{
		Date:   &req.Date,
		Status: ptr.Ptr(domain.StatusConfirmed),
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Строим множество занятых слотов.
	// Записи вне текущего каталога (например, после смены конфигурации слотов)
	// тоже попадают в occupied: они по-прежнему заняты.
	occupiedSet := make(map[types.SlotLabel]struct{}, len(appointments))
	occupied := make([]types.SlotLabel, 0, len(appointments))
	for _, appt := range appointments {
		if _, ok := occupiedSet[appt.StartTime]; ok {
			continue
		}
		occupiedSet[appt.StartTime] = struct{}{}
		occupied = append(occupied, appt.StartTime)
	}

	// 4. Размечаем каталог признаками занятости
	labels := uc.catalogue.Labels()
	slots := make([]Slot, len(labels))
	for i, label := range labels {
		_, taken := occupiedSet[label]
		slots[i] = Slot{Label: label, Taken: taken}
	}

	uc.logger.Info("GetDaySchedule: date=%s, %d/%d slots taken", req.Date, len(occupied), len(labels))

	return &Response{
		Date:     req.Date,
		Slots:    slots,
		Occupied: occupied,
	}, nil
}
