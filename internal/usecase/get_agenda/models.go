package get_agenda

import (
	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// Request модель запроса агенды
type Request struct {
	Search string // Поисковая строка (пустая отключает фильтрацию)
}

// DateGroup записи одного календарного дня в отсортированном порядке
type DateGroup struct {
	Date         types.DateString
	Appointments []*domain.Appointment

	// Expanded управляет начальным состоянием группы на экране:
	// при активном поиске каждая группа с совпадениями раскрыта
	Expanded bool
}

// SearchCounts счётчики совпадений при активном поиске
type SearchCounts struct {
	Total     int // Всего совпадений
	Cancelled int // Из них отменённых
	Effective int // Total - Cancelled
}

// Counts отчётные агрегаты по текущему списку.
// Пересчитываются детерминированно при каждом запросе, без кэширования.
type Counts struct {
	TodayConfirmed int // Подтверждённые записи на сегодня
	TotalConfirmed int // Все подтверждённые записи
	TotalCancelled int // Все отменённые записи

	Search *SearchCounts // nil, если поиск не активен
}

// Response собранная view-model админского экрана
type Response struct {
	Today  types.DateString // Дата "сегодня", от которой считалось партиционирование
	Search string           // Действовавшая поисковая строка

	// Группы дат, отсортированные по возрастанию.
	// FutureOrToday содержит даты >= сегодня, Past содержит даты < сегодня.
	// Past группы по умолчанию скрыты на экране, но при активном поиске
	// участвуют в выдаче наравне с будущими.
	FutureOrToday []DateGroup
	Past          []DateGroup

	Counts Counts
}
