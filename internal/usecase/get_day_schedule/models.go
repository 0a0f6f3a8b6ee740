package get_day_schedule

import (
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// Request модель запроса расписания на день
type Request struct {
	Date types.DateString // Дата, на которую запрашивается расписание
}

// Slot один слот каталога с признаком занятости
type Slot struct {
	Label types.SlotLabel // Метка слота как она показывается клиенту
	Taken bool            // true, если слот занят подтверждённой записью
}

// Response модель ответа с расписанием на день
type Response struct {
	Date     types.DateString  // Дата запроса
	Slots    []Slot            // Полный каталог слотов с признаками занятости
	Occupied []types.SlotLabel // Метки занятых слотов (для обратной совместимости с booking UI)
}
