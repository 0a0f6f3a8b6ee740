package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/JBarber-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/JBarber-BookingService/internal/integrations/whatsapp"
	"github.com/m04kA/JBarber-BookingService/pkg/ptr"
)

// serializationFailure код SQLSTATE проигравшей SERIALIZABLE транзакции
const serializationFailure = "40001"

// UseCase use case создания записи.
//
// Исходное приложение делало check-then-write против документной БД без
// транзакции и жило с гонкой двойного бронирования. Здесь проверка и вставка
// выполняются в SERIALIZABLE транзакции с блокировкой строк слота, а частичный
// уникальный индекс по (date, time) WHERE status='confirmed' закрывает
// остаточное окно. Семантика ошибки для клиента прежняя: Conflict.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogue       *domain.SlotCatalogue
	whatsapp        WhatsAppClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogue *domain.SlotCatalogue,
	whatsapp WhatsAppClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogue:       catalogue,
		whatsapp:        whatsapp,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, date=%s, time=%s", req.ClientName, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.catalogue); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Проверка занятости и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Подтверждённые записи на этот слот (строки блокируются FOR UPDATE)
		filter := domain.AppointmentsFilter{
			Date:      &req.Date,
			StartTime: &req.StartTime,
			Status:    ptr.Ptr(domain.StatusConfirmed),
		}

		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		if len(existing) > 0 {
			uc.logger.Warn("CreateAppointment: slot (%s, %s) already taken", req.Date, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 2.2. Создаем запись
		appt := &domain.Appointment{
			ClientName: strings.TrimSpace(req.ClientName),
			Phone:      strings.TrimSpace(req.Phone),
			Date:       req.Date,
			StartTime:  req.StartTime,
			Status:     domain.StatusConfirmed,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс служит последней линией защиты от гонки
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot (%s, %s) taken by concurrent insert", req.Date, req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// serialization_failure на commit проигравшей транзакции: для клиента
		// это тот же конфликт за слот, что и срабатывание уникального индекса
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == serializationFailure {
			uc.logger.Warn("CreateAppointment: slot (%s, %s) lost serializable race", req.Date, req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 3. Best-effort уведомление барберу. Запись уже надёжно создана:
	// сбой отправки логируется и не возвращается клиенту.
	// Выключенная в конфигурации отправка сбоем не считается.
	if sendErr := uc.whatsapp.Send(ctx, result.ClientName, result.Date, result.StartTime, result.Phone); sendErr != nil && !errors.Is(sendErr, whatsapp.ErrDisabled) {
		uc.logger.Warn("CreateAppointment: whatsapp notification failed for appointment id=%d: %v", result.ID, sendErr)
	}

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		Phone:       result.Phone,
		Date:        result.Date,
		StartTime:   result.StartTime,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		WhatsAppURL: uc.whatsapp.BuildLink(result.ClientName, result.Date, result.StartTime, result.Phone),
	}, nil
}
