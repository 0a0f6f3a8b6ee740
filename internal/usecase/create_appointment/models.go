package create_appointment

import (
	"time"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName string           // Имя клиента
	Phone      string           // Телефон клиента (контакт и ключ поиска)
	Date       types.DateString // Дата записи
	StartTime  types.SlotLabel  // Метка слота из каталога
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	ClientName string           // Имя клиента
	Phone      string           // Телефон клиента
	Date       types.DateString // Дата записи
	StartTime  types.SlotLabel  // Метка слота
	Status     string           // Статус записи (confirmed)
	CreatedAt  time.Time        // Время создания

	// Ссылка wa.me, которую клиент открывает после бронирования.
	// Best-effort: её неоткрытие не влияет на созданную запись.
	WhatsAppURL string
}
