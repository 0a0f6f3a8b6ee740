package get_agenda

import (
	"sort"
	"strings"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// Чистые функции агрегации админской агенды. Никакого скрытого состояния:
// вход: список записей и "сегодняшняя" дата, выход детерминирован.

// sortAppointments сортирует записи: сначала по дате по возрастанию
// (лексикографически, корректно для zero-padded ISO), затем по рангу метки
// слота в 24-часовом пространстве. Вход не мутируется. Идемпотентна.
func sortAppointments(list []*domain.Appointment) []*domain.Appointment {
	sorted := make([]*domain.Appointment, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].StartTime.Rank() < sorted[j].StartTime.Rank()
	})

	return sorted
}

// groupByDate группирует отсортированный список по дате, сохраняя внутри
// группы порядок сортировки. Возвращает также ключи дат в порядке первого
// вхождения; потребители пересортировывают ключи сами, а не полагаются на
// порядок map.
func groupByDate(sorted []*domain.Appointment) (map[types.DateString][]*domain.Appointment, []types.DateString) {
	groups := make(map[types.DateString][]*domain.Appointment)
	keys := make([]types.DateString, 0)

	for _, appt := range sorted {
		if _, ok := groups[appt.Date]; !ok {
			keys = append(keys, appt.Date)
		}
		groups[appt.Date] = append(groups[appt.Date], appt)
	}

	return groups, keys
}

// partitionPastFuture делит отсортированные по возрастанию ключи дат на
// "сегодня и будущее" (>= today) и "прошлое" (< today). Строковое сравнение
// валидно только для zero-padded ISO дат.
func partitionPastFuture(dateKeys []types.DateString, today types.DateString) (futureOrToday, past []types.DateString) {
	futureOrToday = make([]types.DateString, 0, len(dateKeys))
	past = make([]types.DateString, 0)

	for _, key := range dateKeys {
		if key.Before(today) {
			past = append(past, key)
		} else {
			futureOrToday = append(futureOrToday, key)
		}
	}

	return futureOrToday, past
}

// filterBySearch фильтрует записи поисковой строкой: case-insensitive
// подстрока по имени клиента ИЛИ сырая подстрока по телефону (телефон не
// case-fold'ится: это цифры и пунктуация). Пустой запрос даёт identity,
// возвращается вход как есть.
func filterBySearch(list []*domain.Appointment, query string) []*domain.Appointment {
	if query == "" {
		return list
	}

	queryLower := strings.ToLower(query)

	filtered := make([]*domain.Appointment, 0, len(list))
	for _, appt := range list {
		if strings.Contains(strings.ToLower(appt.ClientName), queryLower) ||
			strings.Contains(appt.Phone, query) {
			filtered = append(filtered, appt)
		}
	}

	return filtered
}

// computeCounts считает отчётные агрегаты по полному списку и, при активном
// поиске, по отфильтрованному
func computeCounts(all, filtered []*domain.Appointment, today types.DateString, searchActive bool) Counts {
	counts := Counts{}

	for _, appt := range all {
		if appt.IsCancelled() {
			counts.TotalCancelled++
			continue
		}
		counts.TotalConfirmed++
		if appt.Date == today {
			counts.TodayConfirmed++
		}
	}

	if searchActive {
		sc := &SearchCounts{Total: len(filtered)}
		for _, appt := range filtered {
			if appt.IsCancelled() {
				sc.Cancelled++
			}
		}
		sc.Effective = sc.Total - sc.Cancelled
		counts.Search = sc
	}

	return counts
}

// buildGroups собирает упорядоченные группы дат для набора ключей
func buildGroups(groups map[types.DateString][]*domain.Appointment, keys []types.DateString, expanded bool) []DateGroup {
	out := make([]DateGroup, 0, len(keys))
	for _, key := range keys {
		out = append(out, DateGroup{
			Date:         key,
			Appointments: groups[key],
			Expanded:     expanded,
		})
	}
	return out
}
