package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/JBarber-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "09:00 AM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат даты и метки слота проверяется здесь же, до вызова use case.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewSlotLabelFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		Phone:       resp.Phone,
		Date:        resp.Date.String(),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		WhatsAppURL: resp.WhatsAppURL,
	}
}
