package get_day_schedule

import (
	getDaySchedule "github.com/m04kA/JBarber-BookingService/internal/usecase/get_day_schedule"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Label string `json:"label"`
	Taken bool   `json:"taken"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
	Occupied []string       `json:"occupied"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(dateStr string) (*getDaySchedule.Request, error) {
	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		return nil, err
	}
	return &getDaySchedule.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{Label: s.Label.String(), Taken: s.Taken}
	}

	occupied := make([]string, len(resp.Occupied))
	for i, label := range resp.Occupied {
		occupied[i] = label.String()
	}

	return &DayScheduleResponse{
		Date:     resp.Date.String(),
		Slots:    slots,
		Occupied: occupied,
	}
}
