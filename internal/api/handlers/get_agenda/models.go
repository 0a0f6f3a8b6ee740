package get_agenda

import (
	svcmodels "github.com/m04kA/JBarber-BookingService/internal/service/appointments/models"
	getAgenda "github.com/m04kA/JBarber-BookingService/internal/usecase/get_agenda"
)

// DateGroupResponse записи одного дня в HTTP-ответе
type DateGroupResponse struct {
	Date         string                          `json:"date"` // "2025-10-15"
	Appointments []svcmodels.AppointmentResponse `json:"appointments"`
	Expanded     bool                            `json:"expanded"`
}

// SearchCountsResponse счётчики совпадений поиска
type SearchCountsResponse struct {
	Total     int `json:"total"`
	Cancelled int `json:"cancelled"`
	Effective int `json:"effective"`
}

// CountsResponse агрегаты по текущему списку
type CountsResponse struct {
	TodayConfirmed int `json:"todayConfirmed"`
	TotalConfirmed int `json:"totalConfirmed"`
	TotalCancelled int `json:"totalCancelled"`

	Search *SearchCountsResponse `json:"search,omitempty"`
}

// AgendaResponse HTTP модель агенды
type AgendaResponse struct {
	Today  string `json:"today"` // "2025-10-15"
	Search string `json:"search,omitempty"`

	FutureOrToday []DateGroupResponse `json:"futureOrToday"`
	Past          []DateGroupResponse `json:"past"`

	Counts CountsResponse `json:"counts"`
}

// ToUseCaseRequest конвертирует параметры запроса в use case модель
func ToUseCaseRequest(search string) *getAgenda.Request {
	return &getAgenda.Request{
		Search: search,
	}
}

// FromUseCaseResponse конвертирует use case ответ в HTTP модель
func FromUseCaseResponse(resp *getAgenda.Response) *AgendaResponse {
	if resp == nil {
		return nil
	}

	out := &AgendaResponse{
		Today:         resp.Today.String(),
		Search:        resp.Search,
		FutureOrToday: fromGroups(resp.FutureOrToday),
		Past:          fromGroups(resp.Past),
		Counts: CountsResponse{
			TodayConfirmed: resp.Counts.TodayConfirmed,
			TotalConfirmed: resp.Counts.TotalConfirmed,
			TotalCancelled: resp.Counts.TotalCancelled,
		},
	}

	if resp.Counts.Search != nil {
		out.Counts.Search = &SearchCountsResponse{
			Total:     resp.Counts.Search.Total,
			Cancelled: resp.Counts.Search.Cancelled,
			Effective: resp.Counts.Search.Effective,
		}
	}

	return out
}

func fromGroups(groups []getAgenda.DateGroup) []DateGroupResponse {
	out := make([]DateGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = DateGroupResponse{
			Date:         g.Date.String(),
			Appointments: svcmodels.FromDomainAppointmentList(g.Appointments).Appointments,
			Expanded:     g.Expanded,
		}
	}
	return out
}
