package create_appointment

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот уже занят подтверждённой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrUnknownSlot возвращается, когда метка слота отсутствует в каталоге
	ErrUnknownSlot = errors.New("create_appointment: unknown slot label")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
