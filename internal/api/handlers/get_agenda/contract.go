package get_agenda

import (
	"context"

	getAgenda "github.com/m04kA/JBarber-BookingService/internal/usecase/get_agenda"
)

// GetAgendaUseCase интерфейс use case сборки агенды
type GetAgendaUseCase interface {
	Execute(ctx context.Context, req *getAgenda.Request) (*getAgenda.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
