package get_agenda

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// UseCase use case сборки админской агенды: сортировка, группировка по датам,
// партиционирование прошлое/будущее, поиск и отчётные счётчики.
type UseCase struct {
	appointments AppointmentsService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointments AppointmentsService, logger Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case сборки агенды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAgenda: search=%q", req.Search)

	// 1. Загружаем все записи (включая отменённые: они остаются в истории)
	appointments, err := uc.appointments.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	today := types.NewDateString(uc.timeProvider.Now())

	// 2. Собираем view-model чистыми функциями
	view := BuildView(appointments, req.Search, today)

	uc.logger.Info("GetAgenda: %d appointments, %d future groups, %d past groups",
		len(appointments), len(view.FutureOrToday), len(view.Past))

	return view, nil
}

// BuildView собирает view-model из списка записей: чистая и детерминированная,
// пригодна для тестирования без окружения рендеринга и без БД.
//
// Контракт раскрытия групп: при непустом поиске каждая группа с совпадениями
// раскрыта, и прошедшие даты участвуют в поиске наравне с будущими, хотя без
// поиска скрыты по умолчанию.
func BuildView(appointments []*domain.Appointment, search string, today types.DateString) *Response {
	searchActive := search != ""

	filtered := filterBySearch(appointments, search)
	sorted := sortAppointments(filtered)
	groups, keys := groupByDate(sorted)

	// Ключи пересортировываются явно: на порядок вставки map полагаться нельзя
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	futureKeys, pastKeys := partitionPastFuture(keys, today)

	return &Response{
		Today:         today,
		Search:        search,
		FutureOrToday: buildGroups(groups, futureKeys, searchActive),
		Past:          buildGroups(groups, pastKeys, searchActive),
		Counts:        computeCounts(appointments, filtered, today, searchActive),
	}
}
