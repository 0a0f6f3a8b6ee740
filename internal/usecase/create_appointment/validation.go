package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/JBarber-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Телефон не валидируется сверх непустоты: он хранится как контактный
// display string и ключ поиска.
func validateRequest(req *Request, catalogue *domain.SlotCatalogue) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Слот обязан существовать в каталоге, это единственный источник
	// допустимых меток времени
	if !catalogue.Contains(req.StartTime) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, req.StartTime)
	}

	return nil
}
