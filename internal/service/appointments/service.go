package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/JBarber-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/JBarber-BookingService/internal/service/appointments/models"
)

// Service сервис административных операций над записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ListAll возвращает все записи (подтверждённые и отменённые) для админского экрана.
// Сортировка внутри дня остаётся заботой view-model, здесь порядок только по дате.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	s.logger.Info("ListAll: fetching all appointments")

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments", len(appointments))
	return appointments, nil
}

// Cancel отменяет запись с указанием причины и возвращает обновлённую запись.
// Пустая причина заменяется плейсхолдером. Отмена уже отменённой записи
// проходит успешно и просто перезаписывает статус и причину.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	var reason *string
	if req != nil {
		reason = req.Reason
	}

	cancelReason := domain.DefaultCancellationReason
	if reason != nil && strings.TrimSpace(*reason) != "" {
		cancelReason = strings.TrimSpace(*reason)
	}

	if len(cancelReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment id=%d", id)
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	s.logger.Info("Cancel: cancelling appointment id=%d, reason=%q", id, cancelReason)

	if err := s.appointmentRepo.Cancel(ctx, id, cancelReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - reload appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Delete физически удаляет запись. Escape hatch для чистки мусора,
// в обычных пользовательских сценариях не используется.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Warn("Delete: physically deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}
